package memory

import (
	"context"
	"fmt"

	"adopciones-api/internal/domain/adoptions"
	"adopciones-api/internal/platform/apperr"
)

type adoptionRepo struct {
	db *DB
}

func NewAdoptionRepo(db *DB) adoptions.Repository {
	return &adoptionRepo{db: db}
}

// RunInTx toma el lock de escritura durante toda la transacción y aplica
// las escrituras solo si fn devuelve nil.
func (r *adoptionRepo) RunInTx(ctx context.Context, fn func(tx adoptions.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx := &adoptionTx{db: r.db, adopted: map[int64]bool{}}
	if err := fn(tx); err != nil {
		return err
	}

	for _, a := range tx.inserted {
		r.db.adoptions[a.ID] = a
	}
	if n := len(tx.inserted); n > 0 {
		r.db.lastAdoption = tx.inserted[n-1].ID
	}
	for id := range tx.adopted {
		p := r.db.pets[id]
		p.Available = false
		r.db.pets[id] = p
	}
	return nil
}

func (r *adoptionRepo) List(_ context.Context, f adoptions.ListFilter) ([]adoptions.Adoption, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range sortedValues(r.db.adoptions) {
		if f.Year != nil && a.Date.Year() != *f.Year {
			continue
		}
		if f.ShelterID != nil && a.ShelterID != *f.ShelterID {
			continue
		}
		if f.PetID != nil && a.PetID != *f.PetID {
			continue
		}
		out = append(out, a)
	}
	return paginate(out, f.Offset, f.Limit), nil
}

// adoptionTx corre con db.mu tomado: no debe volver a bloquear.
type adoptionTx struct {
	db       *DB
	inserted []adoptions.Adoption
	adopted  map[int64]bool
}

func (t *adoptionTx) PetAvailable(_ context.Context, petID int64) (bool, error) {
	p, ok := t.db.pets[petID]
	if !ok {
		return false, fmt.Errorf("mascota %d: %w", petID, apperr.ErrNotFound)
	}
	return p.Available && !t.adopted[petID], nil
}

func (t *adoptionTx) ShelterExists(_ context.Context, shelterID int64) (bool, error) {
	_, ok := t.db.shelters[shelterID]
	return ok, nil
}

func (t *adoptionTx) HasAdoption(_ context.Context, petID int64) (bool, error) {
	for _, a := range t.db.adoptions {
		if a.PetID == petID {
			return true, nil
		}
	}
	for _, a := range t.inserted {
		if a.PetID == petID {
			return true, nil
		}
	}
	return false, nil
}

func (t *adoptionTx) Insert(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	exists, err := t.HasAdoption(ctx, a.PetID)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	if exists {
		return adoptions.Adoption{}, fmt.Errorf("adopción de mascota %d: %w", a.PetID, apperr.ErrConflict)
	}
	if _, ok := t.db.pets[a.PetID]; !ok {
		return adoptions.Adoption{}, fmt.Errorf("mascota %d: %w", a.PetID, apperr.ErrNotFound)
	}
	if _, ok := t.db.shelters[a.ShelterID]; !ok {
		return adoptions.Adoption{}, fmt.Errorf("refugio %d: %w", a.ShelterID, apperr.ErrNotFound)
	}

	a.ID = t.db.lastAdoption + int64(len(t.inserted)) + 1
	t.inserted = append(t.inserted, a)
	return a, nil
}

func (t *adoptionTx) MarkPetAdopted(_ context.Context, petID int64) error {
	if _, ok := t.db.pets[petID]; !ok {
		return fmt.Errorf("mascota %d: %w", petID, apperr.ErrNotFound)
	}
	t.adopted[petID] = true
	return nil
}
