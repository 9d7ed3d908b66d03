package memory

import (
	"context"
	"fmt"

	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/platform/apperr"
)

type petRepo struct {
	db *DB
}

func NewPetRepo(db *DB) pets.Repository {
	return &petRepo{db: db}
}

func (r *petRepo) Create(_ context.Context, p pets.Pet) (pets.Pet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.shelters[p.ShelterID]; !ok {
		return pets.Pet{}, fmt.Errorf("refugio %d: %w", p.ShelterID, pets.ErrShelterNotFound)
	}

	r.db.lastPet++
	p.ID = r.db.lastPet
	p = clonePet(p)
	r.db.pets[p.ID] = p
	return clonePet(p), nil
}

func (r *petRepo) GetByID(_ context.Context, id int64) (pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.pets[id]
	if !ok {
		return pets.Pet{}, fmt.Errorf("mascota %d: %w", id, apperr.ErrNotFound)
	}
	return clonePet(p), nil
}

func (r *petRepo) List(_ context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range sortedValues(r.db.pets) {
		if f.ShelterID != nil && p.ShelterID != *f.ShelterID {
			continue
		}
		if f.Species != nil && p.Species != *f.Species {
			continue
		}
		if f.OnlyAvailable && !p.Available {
			continue
		}
		if f.OnlyWithPhoto && p.PhotoURL == nil {
			continue
		}
		out = append(out, clonePet(p))
	}
	return paginate(out, f.Offset, f.Limit), nil
}

func (r *petRepo) Update(_ context.Context, id int64, ch pets.Changes) (pets.Pet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.pets[id]
	if !ok {
		return pets.Pet{}, fmt.Errorf("mascota %d: %w", id, apperr.ErrNotFound)
	}
	if ch.ShelterID != nil {
		if _, ok := r.db.shelters[*ch.ShelterID]; !ok {
			return pets.Pet{}, fmt.Errorf("refugio %d: %w", *ch.ShelterID, pets.ErrShelterNotFound)
		}
	}

	// Apply nunca devuelve estado a true
	ch.Apply(&p)
	p = clonePet(p)
	r.db.pets[id] = p
	return clonePet(p), nil
}

func clonePet(p pets.Pet) pets.Pet {
	p.Breed = cloneString(p.Breed)
	p.PhotoURL = cloneString(p.PhotoURL)
	return p
}
