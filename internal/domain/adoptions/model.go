package adoptions

import "time"

// Adoption se registra una sola vez por mascota y no se modifica.
// ShelterID es el refugio donde se registra; no se exige que sea el de la mascota.
type Adoption struct {
	ID        int64
	Adopter   string
	Date      time.Time // solo fecha (UTC, 00:00)
	PetID     int64
	ShelterID int64
}
