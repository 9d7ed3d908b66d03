package pets

import (
	"context"

	"adopciones-api/internal/platform/patch"
)

type ListFilter struct {
	ShelterID     *int64
	Species       *Species
	OnlyAvailable bool
	OnlyWithPhoto bool

	Offset int
	Limit  int // 0 => sin límite
}

// Changes son los campos de una actualización parcial, ya validados.
// nil (o un patch.Field sin enviar) => la columna no se toca.
type Changes struct {
	Name      *string
	Species   *Species
	Breed     patch.Field[string] // null limpia
	Age       *int
	Sex       *string
	Available *bool
	PhotoURL  patch.Field[string] // null limpia
	ShelterID *int64
}

// Apply aplica los cambios sobre p. Available solo puede bajar a false.
func (c Changes) Apply(p *Pet) {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Species != nil {
		p.Species = *c.Species
	}
	c.Breed.ApplyNullable(&p.Breed)
	if c.Age != nil {
		p.Age = *c.Age
	}
	if c.Sex != nil {
		p.Sex = *c.Sex
	}
	if c.Available != nil {
		p.Available = p.Available && *c.Available
	}
	c.PhotoURL.ApplyNullable(&p.PhotoURL)
	if c.ShelterID != nil {
		p.ShelterID = *c.ShelterID
	}
}

// Repository devuelve errores envueltos con apperr.ErrNotFound cuando el id no existe,
// y con ErrShelterNotFound cuando el refugio referido no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// List ordena por id ascendente.
	List(ctx context.Context, f ListFilter) ([]Pet, error)

	// Update escribe solo las columnas presentes en ch y devuelve la fila
	// resultante. Available nunca pasa de false a true aunque ch lo pida
	// (una adopción concurrente gana).
	Update(ctx context.Context, id int64, ch Changes) (Pet, error)
}
