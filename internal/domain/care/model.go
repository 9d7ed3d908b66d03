package care

import "time"

// Event es una entrada del historial de cuidado. Solo se agregan.
type Event struct {
	ID    int64
	Type  string
	Cost  float64
	Date  time.Time // solo fecha (UTC, 00:00)
	PetID int64
}

type Totals struct {
	Events int
	Cost   float64
}

// PetCost es el costo acumulado de una mascota.
type PetCost struct {
	PetID   int64
	PetName string
	Totals
}
