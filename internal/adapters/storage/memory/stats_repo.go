package memory

import (
	"context"
	"time"

	"adopciones-api/internal/domain/stats"
)

type statsRepo struct {
	db *DB
}

func NewStatsRepo(db *DB) stats.Repository {
	return &statsRepo{db: db}
}

func (r *statsRepo) CountShelters(context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.db.shelters), nil
}

func (r *statsRepo) CountPets(context.Context) (int, int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	active := 0
	for _, p := range r.db.pets {
		if p.Available {
			active++
		}
	}
	return len(r.db.pets), active, nil
}

func (r *statsRepo) PetsBySpecies(context.Context) (map[string]int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := map[string]int{}
	for _, p := range r.db.pets {
		out[string(p.Species)]++
	}
	return out, nil
}

func (r *statsRepo) CountAdoptions(context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.db.adoptions), nil
}

func (r *statsRepo) CareTotals(context.Context) (stats.CareTotals, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var t stats.CareTotals
	for _, e := range r.db.events {
		t.Events++
		t.Cost += e.Cost
	}
	return t, nil
}

func (r *statsRepo) AdoptionDates(_ context.Context, since *time.Time) ([]time.Time, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]time.Time, 0, len(r.db.adoptions))
	for _, a := range sortedValues(r.db.adoptions) {
		if since != nil && a.Date.Before(*since) {
			continue
		}
		out = append(out, a.Date)
	}
	return out, nil
}
