package adoptions

import "context"

// Tx son las operaciones disponibles dentro de la transacción de adopción.
// Las implementaciones bloquean la fila de la mascota (o equivalente) para
// que dos adopciones concurrentes de la misma mascota se serialicen.
type Tx interface {
	// PetAvailable devuelve el estado de la mascota; apperr.ErrNotFound si no existe.
	PetAvailable(ctx context.Context, petID int64) (bool, error)
	ShelterExists(ctx context.Context, shelterID int64) (bool, error)
	HasAdoption(ctx context.Context, petID int64) (bool, error)

	// Insert devuelve apperr.ErrConflict si ya hay una adopción para la mascota.
	Insert(ctx context.Context, a Adoption) (Adoption, error)
	MarkPetAdopted(ctx context.Context, petID int64) error
}

type ListFilter struct {
	Year      *int
	ShelterID *int64
	PetID     *int64

	Offset int
	Limit  int
}

type Repository interface {
	// RunInTx confirma si fn devuelve nil; si no, descarta todo lo escrito.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error

	// List ordena por id ascendente.
	List(ctx context.Context, f ListFilter) ([]Adoption, error)
}
