package pets

import (
	"context"
	"errors"
	"strings"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/patch"
)

var (
	ErrNotFound        = apperr.New("mascota no encontrada", apperr.ErrNotFound)
	ErrShelterNotFound = apperr.New("refugio no encontrado", apperr.ErrNotFound)

	// ErrCannotReactivate: no existe la operación "devolver al refugio".
	ErrCannotReactivate = apperr.New("la mascota no está disponible y no puede reactivarse", apperr.ErrInvalidState)
)

// ShelterLookup resuelve refugios sin acoplar este paquete a shelters.
type ShelterLookup interface {
	Exists(ctx context.Context, id int64) error
}

type Service struct {
	repo     Repository
	shelters ShelterLookup
}

func NewService(repo Repository, shelters ShelterLookup) *Service {
	return &Service{repo: repo, shelters: shelters}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     *string
	Age       *int
	Sex       string
	Available *bool // nil => true
	PhotoURL  *string
	ShelterID int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	v := apperr.NewValidation()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Add("nombre", "es obligatorio")
	}
	sp, ok := ParseSpecies(in.Species)
	if !ok {
		v.Add("especie", "debe ser Dog, Cat, Rabbit o Bird")
	}
	if in.Age == nil {
		v.Add("edad", "es obligatorio")
	} else if *in.Age < 0 {
		v.Add("edad", "debe ser >= 0")
	}
	sex := strings.TrimSpace(in.Sex)
	if sex == "" {
		v.Add("sexo", "es obligatorio")
	}
	if in.ShelterID <= 0 {
		v.Add("refugio_id", "es obligatorio")
	}
	if err := v.Err(); err != nil {
		return Pet{}, err
	}

	if err := s.shelters.Exists(ctx, in.ShelterID); err != nil {
		return Pet{}, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p, err := s.repo.Create(ctx, Pet{
		Name:      name,
		Species:   sp,
		Breed:     trimmedOrNil(in.Breed),
		Age:       *in.Age,
		Sex:       sex,
		Available: available,
		PhotoURL:  trimmedOrNil(in.PhotoURL),
		ShelterID: in.ShelterID,
	})
	if err != nil {
		return Pet{}, mapErr(err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, mapErr(err)
	}
	return p, nil
}

func (s *Service) Exists(ctx context.Context, id int64) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

// ListByShelter devuelve todas las mascotas del refugio, disponibles o no.
func (s *Service) ListByShelter(ctx context.Context, shelterID int64, offset, limit int) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{ShelterID: &shelterID, Offset: offset, Limit: limit})
}

type UpdateInput struct {
	Name      patch.Field[string]
	Species   patch.Field[string]
	Breed     patch.Field[string] // null limpia
	Age       patch.Field[int]
	Sex       patch.Field[string]
	Available patch.Field[bool]
	PhotoURL  patch.Field[string] // null limpia
	ShelterID patch.Field[int64]
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	v := apperr.NewValidation()
	if in.Name.Set && (in.Name.IsNull() || strings.TrimSpace(*in.Name.Value) == "") {
		v.Add("nombre", "no puede ser vacío")
	}
	var sp Species
	if in.Species.Set {
		ok := false
		if !in.Species.IsNull() {
			sp, ok = ParseSpecies(*in.Species.Value)
		}
		if !ok {
			v.Add("especie", "debe ser Dog, Cat, Rabbit o Bird")
		}
	}
	if in.Age.Set && (in.Age.IsNull() || *in.Age.Value < 0) {
		v.Add("edad", "debe ser un entero >= 0")
	}
	if in.Sex.Set && (in.Sex.IsNull() || strings.TrimSpace(*in.Sex.Value) == "") {
		v.Add("sexo", "no puede ser vacío")
	}
	if in.Available.IsNull() {
		v.Add("estado", "no puede ser null")
	}
	if in.ShelterID.IsNull() {
		v.Add("refugio_id", "no puede ser null")
	}
	if err := v.Err(); err != nil {
		return Pet{}, err
	}

	// la lectura solo valida; la escritura toca únicamente las columnas enviadas
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Available.Set && *in.Available.Value && !p.Available {
		return Pet{}, ErrCannotReactivate
	}
	if in.ShelterID.Set && *in.ShelterID.Value != p.ShelterID {
		if err := s.shelters.Exists(ctx, *in.ShelterID.Value); err != nil {
			return Pet{}, err
		}
	}

	var ch Changes
	if in.Name.Set {
		name := strings.TrimSpace(*in.Name.Value)
		ch.Name = &name
	}
	if in.Species.Set {
		ch.Species = &sp
	}
	if in.Breed.Set {
		ch.Breed = patch.Field[string]{Set: true, Value: trimmedOrNil(in.Breed.Value)}
	}
	ch.Age = in.Age.Value
	if in.Sex.Set {
		sex := strings.TrimSpace(*in.Sex.Value)
		ch.Sex = &sex
	}
	ch.Available = in.Available.Value
	if in.PhotoURL.Set {
		ch.PhotoURL = patch.Field[string]{Set: true, Value: trimmedOrNil(in.PhotoURL.Value)}
	}
	ch.ShelterID = in.ShelterID.Value

	saved, err := s.repo.Update(ctx, id, ch)
	if err != nil {
		return Pet{}, mapErr(err)
	}
	return saved, nil
}

// Deactivate es la baja lógica (estado=false). Repetirla no es error.
func (s *Service) Deactivate(ctx context.Context, id int64) (Pet, error) {
	unavailable := false
	saved, err := s.repo.Update(ctx, id, Changes{Available: &unavailable})
	if err != nil {
		return Pet{}, mapErr(err)
	}
	return saved, nil
}

func (s *Service) SetPhoto(ctx context.Context, id int64, url string) error {
	_, err := s.repo.Update(ctx, id, Changes{PhotoURL: patch.Of(url)})
	return mapErr(err)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrShelterNotFound):
		return ErrShelterNotFound
	case errors.Is(err, apperr.ErrNotFound):
		return ErrNotFound
	}
	return err
}

func trimmedOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
