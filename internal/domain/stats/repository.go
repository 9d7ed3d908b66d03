package stats

import (
	"context"
	"time"
)

// Repository expone agregados globales. Las especies sin mascotas no aparecen
// en PetsBySpecies.
type Repository interface {
	CountShelters(ctx context.Context) (int, error)
	CountPets(ctx context.Context) (total, active int, err error)
	PetsBySpecies(ctx context.Context) (map[string]int, error)
	CountAdoptions(ctx context.Context) (int, error)
	CareTotals(ctx context.Context) (CareTotals, error)

	// AdoptionDates devuelve las fechas de adopción >= since (todas si since es nil).
	AdoptionDates(ctx context.Context, since *time.Time) ([]time.Time, error)
}
