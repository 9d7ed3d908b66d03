// Package memory implementa los repositorios en memoria (dev y tests).
// Todos los repos comparten un *DB para que las transacciones de adopción
// vean mascotas, refugios y adopciones bajo el mismo lock.
package memory

import (
	"sort"
	"sync"

	"adopciones-api/internal/domain/adoptions"
	"adopciones-api/internal/domain/care"
	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/domain/shelters"
)

type DB struct {
	mu sync.RWMutex

	shelters  map[int64]shelters.Shelter
	pets      map[int64]pets.Pet
	adoptions map[int64]adoptions.Adoption
	events    map[int64]care.Event

	lastShelter  int64
	lastPet      int64
	lastAdoption int64
	lastEvent    int64
}

func New() *DB {
	return &DB{
		shelters:  make(map[int64]shelters.Shelter),
		pets:      make(map[int64]pets.Pet),
		adoptions: make(map[int64]adoptions.Adoption),
		events:    make(map[int64]care.Event),
	}
}

// sortedValues devuelve los valores ordenados por id ascendente.
func sortedValues[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// paginate aplica offset/limit; limit <= 0 => sin límite.
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
