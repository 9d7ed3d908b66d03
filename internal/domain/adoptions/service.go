package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/metrics"
)

var (
	ErrPetNotFound     = apperr.New("mascota no encontrada", apperr.ErrNotFound)
	ErrShelterNotFound = apperr.New("refugio no encontrado", apperr.ErrNotFound)
	ErrPetUnavailable  = apperr.New("la mascota ya no está disponible para adopción", apperr.ErrInvalidState)

	// ErrAlreadyAdopted es a la vez conflicto (unicidad) y estado inválido
	// (la mascota ya no está disponible).
	ErrAlreadyAdopted = apperr.New("la mascota ya tiene una adopción registrada", apperr.ErrConflict, apperr.ErrInvalidState)
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: m,
	}
}

type CreateInput struct {
	PetID     int64
	ShelterID int64
	Adopter   string
	Date      *time.Time
}

// Create registra la adopción y marca la mascota como no disponible en una
// única transacción. Con dos pedidos concurrentes para la misma mascota,
// exactamente uno gana y el otro recibe ErrAlreadyAdopted.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	v := apperr.NewValidation()
	adopter := strings.TrimSpace(in.Adopter)
	if adopter == "" {
		v.Add("adoptante", "es obligatorio")
	}
	if in.Date == nil {
		v.Add("fecha_adopcion", "es obligatorio")
	}
	if in.PetID <= 0 {
		v.Add("mascota_id", "es obligatorio")
	}
	if in.ShelterID <= 0 {
		v.Add("refugio_id", "es obligatorio")
	}
	if err := v.Err(); err != nil {
		s.metrics.AdoptionRejected("validation")
		return Adoption{}, err
	}

	var out Adoption
	err := s.repo.RunInTx(ctx, func(tx Tx) error {
		available, err := tx.PetAvailable(ctx, in.PetID)
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrPetNotFound
		}
		if err != nil {
			return err
		}

		ok, err := tx.ShelterExists(ctx, in.ShelterID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrShelterNotFound
		}

		if !available {
			adopted, err := tx.HasAdoption(ctx, in.PetID)
			if err != nil {
				return err
			}
			if adopted {
				return ErrAlreadyAdopted
			}
			return ErrPetUnavailable
		}

		a, err := tx.Insert(ctx, Adoption{
			Adopter:   adopter,
			Date:      dateOnly(*in.Date),
			PetID:     in.PetID,
			ShelterID: in.ShelterID,
		})
		if errors.Is(err, apperr.ErrConflict) {
			return ErrAlreadyAdopted
		}
		if err != nil {
			return err
		}

		if err := tx.MarkPetAdopted(ctx, in.PetID); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		s.metrics.AdoptionRejected(rejectReason(err))
		return Adoption{}, err
	}

	s.metrics.AdoptionCreated()
	return out, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Adoption, error) {
	return s.repo.List(ctx, f)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	case errors.Is(err, apperr.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
