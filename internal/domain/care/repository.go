package care

import "context"

type Repository interface {
	// Append verifica que la mascota exista e inserta en la misma transacción.
	// Devuelve apperr.ErrNotFound si la mascota no existe.
	Append(ctx context.Context, e Event) (Event, error)

	// ListByPet ordena por fecha descendente (id descendente a igual fecha).
	ListByPet(ctx context.Context, petID int64, offset, limit int) ([]Event, error)

	TotalsByPet(ctx context.Context, petID int64) (Totals, error)
}
