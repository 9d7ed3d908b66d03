package shelters

import (
	"context"

	"adopciones-api/internal/platform/patch"
)

type ListFilter struct {
	OnlyActive bool
	Offset     int
	Limit      int
}

// Changes son los campos de una actualización parcial, ya validados.
// nil (o PhotoURL sin enviar) => la columna no se toca.
type Changes struct {
	Name     *string
	Location *string
	Active   *bool
	PhotoURL patch.Field[string] // null limpia la foto
}

// Apply aplica los cambios sobre s.
func (c Changes) Apply(s *Shelter) {
	if c.Name != nil {
		s.Name = *c.Name
	}
	if c.Location != nil {
		s.Location = *c.Location
	}
	if c.Active != nil {
		s.Active = *c.Active
	}
	c.PhotoURL.ApplyNullable(&s.PhotoURL)
}

func (c Changes) Empty() bool {
	return c.Name == nil && c.Location == nil && c.Active == nil && !c.PhotoURL.Set
}

// Repository devuelve errores envueltos con apperr.ErrNotFound cuando el id no existe.
// List ordena por id ascendente.
type Repository interface {
	Create(ctx context.Context, s Shelter) (Shelter, error)
	GetByID(ctx context.Context, id int64) (Shelter, error)
	List(ctx context.Context, f ListFilter) ([]Shelter, error)

	// Update escribe solo las columnas presentes en ch, en una sola operación,
	// y devuelve la fila resultante.
	Update(ctx context.Context, id int64, ch Changes) (Shelter, error)
}
