package shelters

import (
	"context"
	"errors"
	"strings"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/patch"
)

var ErrNotFound = apperr.New("refugio no encontrado", apperr.ErrNotFound)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	Location string
	Active   *bool // nil => true
	PhotoURL *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Shelter, error) {
	v := apperr.NewValidation()
	name := strings.TrimSpace(in.Name)
	location := strings.TrimSpace(in.Location)
	if name == "" {
		v.Add("nombre", "es obligatorio")
	}
	if location == "" {
		v.Add("ubicacion", "es obligatorio")
	}
	if err := v.Err(); err != nil {
		return Shelter{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return s.repo.Create(ctx, Shelter{
		Name:     name,
		Location: location,
		Active:   active,
		PhotoURL: normalizeURL(in.PhotoURL),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Shelter, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Shelter{}, mapErr(err)
	}
	return sh, nil
}

// Exists devuelve ErrNotFound si el refugio no existe (activo o no).
func (s *Service) Exists(ctx context.Context, id int64) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Shelter, error) {
	return s.repo.List(ctx, f)
}

// UpdateInput: campo no enviado => no se toca.
type UpdateInput struct {
	Name     patch.Field[string]
	Location patch.Field[string]
	Active   patch.Field[bool]
	PhotoURL patch.Field[string] // null limpia la foto
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Shelter, error) {
	v := apperr.NewValidation()
	if in.Name.Set && (in.Name.IsNull() || strings.TrimSpace(*in.Name.Value) == "") {
		v.Add("nombre", "no puede ser vacío")
	}
	if in.Location.Set && (in.Location.IsNull() || strings.TrimSpace(*in.Location.Value) == "") {
		v.Add("ubicacion", "no puede ser vacío")
	}
	if in.Active.IsNull() {
		v.Add("activo", "no puede ser null")
	}
	if err := v.Err(); err != nil {
		return Shelter{}, err
	}

	var ch Changes
	if in.Name.Set {
		name := strings.TrimSpace(*in.Name.Value)
		ch.Name = &name
	}
	if in.Location.Set {
		location := strings.TrimSpace(*in.Location.Value)
		ch.Location = &location
	}
	ch.Active = in.Active.Value
	if in.PhotoURL.Set {
		ch.PhotoURL = patch.Field[string]{Set: true, Value: normalizeURL(in.PhotoURL.Value)}
	}

	sh, err := s.repo.Update(ctx, id, ch)
	if err != nil {
		return Shelter{}, mapErr(err)
	}
	return sh, nil
}

// Deactivate es la baja lógica. Repetirla no es error.
func (s *Service) Deactivate(ctx context.Context, id int64) (Shelter, error) {
	inactive := false
	sh, err := s.repo.Update(ctx, id, Changes{Active: &inactive})
	if err != nil {
		return Shelter{}, mapErr(err)
	}
	return sh, nil
}

// SetPhoto guarda la URL pública de una imagen ya subida.
func (s *Service) SetPhoto(ctx context.Context, id int64, url string) error {
	_, err := s.repo.Update(ctx, id, Changes{PhotoURL: patch.Of(url)})
	return mapErr(err)
}

func mapErr(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func normalizeURL(u *string) *string {
	if u == nil || strings.TrimSpace(*u) == "" {
		return nil
	}
	v := strings.TrimSpace(*u)
	return &v
}
