package memory

import (
	"context"
	"fmt"
	"sort"

	"adopciones-api/internal/domain/care"
	"adopciones-api/internal/platform/apperr"
)

type careRepo struct {
	db *DB
}

func NewCareRepo(db *DB) care.Repository {
	return &careRepo{db: db}
}

func (r *careRepo) Append(_ context.Context, e care.Event) (care.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.pets[e.PetID]; !ok {
		return care.Event{}, fmt.Errorf("mascota %d: %w", e.PetID, apperr.ErrNotFound)
	}

	r.db.lastEvent++
	e.ID = r.db.lastEvent
	r.db.events[e.ID] = e
	return e, nil
}

func (r *careRepo) ListByPet(_ context.Context, petID int64, offset, limit int) ([]care.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]care.Event, 0)
	for _, e := range r.db.events {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, offset, limit), nil
}

func (r *careRepo) TotalsByPet(_ context.Context, petID int64) (care.Totals, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var t care.Totals
	for _, e := range r.db.events {
		if e.PetID == petID {
			t.Events++
			t.Cost += e.Cost
		}
	}
	return t, nil
}
