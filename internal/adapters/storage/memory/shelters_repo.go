package memory

import (
	"context"
	"fmt"

	"adopciones-api/internal/domain/shelters"
	"adopciones-api/internal/platform/apperr"
)

type shelterRepo struct {
	db *DB
}

func NewShelterRepo(db *DB) shelters.Repository {
	return &shelterRepo{db: db}
}

func (r *shelterRepo) Create(_ context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.lastShelter++
	s.ID = r.db.lastShelter
	s.PhotoURL = cloneString(s.PhotoURL)
	r.db.shelters[s.ID] = s
	return s, nil
}

func (r *shelterRepo) GetByID(_ context.Context, id int64) (shelters.Shelter, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.shelters[id]
	if !ok {
		return shelters.Shelter{}, fmt.Errorf("refugio %d: %w", id, apperr.ErrNotFound)
	}
	s.PhotoURL = cloneString(s.PhotoURL)
	return s, nil
}

func (r *shelterRepo) List(_ context.Context, f shelters.ListFilter) ([]shelters.Shelter, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]shelters.Shelter, 0)
	for _, s := range sortedValues(r.db.shelters) {
		if f.OnlyActive && !s.Active {
			continue
		}
		s.PhotoURL = cloneString(s.PhotoURL)
		out = append(out, s)
	}
	return paginate(out, f.Offset, f.Limit), nil
}

// Update aplica ch bajo el lock de escritura.
func (r *shelterRepo) Update(_ context.Context, id int64, ch shelters.Changes) (shelters.Shelter, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.shelters[id]
	if !ok {
		return shelters.Shelter{}, fmt.Errorf("refugio %d: %w", id, apperr.ErrNotFound)
	}
	ch.Apply(&s)
	r.db.shelters[id] = s

	s.PhotoURL = cloneString(s.PhotoURL)
	return s, nil
}
