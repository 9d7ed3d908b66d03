package care

import (
	"context"
	"errors"
	"strings"
	"time"

	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/metrics"
)

var ErrPetNotFound = apperr.New("mascota no encontrada", apperr.ErrNotFound)

type PetLookup interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type Service struct {
	repo    Repository
	pets    PetLookup
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, pets PetLookup, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		pets:    pets,
		metrics: m,
		now:     time.Now,
	}
}

type CreateInput struct {
	PetID int64
	Type  string
	Cost  *float64
	Date  *time.Time // nil => hoy
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Event, error) {
	v := apperr.NewValidation()
	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		v.Add("tipo_evento", "es obligatorio")
	}
	if in.Cost == nil {
		v.Add("costo", "es obligatorio")
	} else if *in.Cost < 0 {
		v.Add("costo", "debe ser >= 0")
	}
	if in.PetID <= 0 {
		v.Add("mascota_id", "es obligatorio")
	}
	if err := v.Err(); err != nil {
		return Event{}, err
	}

	date := s.now()
	if in.Date != nil {
		date = *in.Date
	}

	e, err := s.repo.Append(ctx, Event{
		Type:  typ,
		Cost:  *in.Cost,
		Date:  dateOnly(date),
		PetID: in.PetID,
	})
	if errors.Is(err, apperr.ErrNotFound) {
		return Event{}, ErrPetNotFound
	}
	if err != nil {
		return Event{}, err
	}

	s.metrics.CareEventCreated()
	return e, nil
}

// ListByPet no valida la mascota: una mascota inexistente tiene historial vacío.
func (s *Service) ListByPet(ctx context.Context, petID int64, offset, limit int) ([]Event, error) {
	return s.repo.ListByPet(ctx, petID, offset, limit)
}

// TotalCost con cero eventos devuelve 0, no error.
func (s *Service) TotalCost(ctx context.Context, petID int64) (PetCost, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return PetCost{}, ErrPetNotFound
		}
		return PetCost{}, err
	}

	t, err := s.repo.TotalsByPet(ctx, petID)
	if err != nil {
		return PetCost{}, err
	}

	return PetCost{PetID: p.ID, PetName: p.Name, Totals: t}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
