// Package storagetest contiene la suite de contrato que deben cumplir todos
// los adapters de storage (memoria, SQLite, Postgres).
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"adopciones-api/internal/domain/adoptions"
	"adopciones-api/internal/domain/care"
	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/domain/shelters"
	"adopciones-api/internal/domain/stats"
	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/patch"

	"github.com/stretchr/testify/suite"
)

type Repos struct {
	Shelters  shelters.Repository
	Pets      pets.Repository
	Adoptions adoptions.Repository
	Care      care.Repository
	Stats     stats.Repository
}

// Suite se instancia con NewRepos, que debe devolver un storage vacío por test.
type Suite struct {
	suite.Suite

	NewRepos func(t *testing.T) Repos

	r   Repos
	ctx context.Context
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.r = s.NewRepos(s.T())
}

func day(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func (s *Suite) shelter(name string, active bool) shelters.Shelter {
	sh, err := s.r.Shelters.Create(s.ctx, shelters.Shelter{Name: name, Location: "Lima", Active: active})
	s.Require().NoError(err)
	return sh
}

func (s *Suite) pet(name string, sp pets.Species, shelterID int64) pets.Pet {
	p, err := s.r.Pets.Create(s.ctx, pets.Pet{
		Name:      name,
		Species:   sp,
		Age:       2,
		Sex:       "M",
		Available: true,
		ShelterID: shelterID,
	})
	s.Require().NoError(err)
	return p
}

func (s *Suite) adopt(petID, shelterID int64, date string) adoptions.Adoption {
	var out adoptions.Adoption
	err := s.r.Adoptions.RunInTx(s.ctx, func(tx adoptions.Tx) error {
		a, err := tx.Insert(s.ctx, adoptions.Adoption{Adopter: "Ana", Date: day(date), PetID: petID, ShelterID: shelterID})
		if err != nil {
			return err
		}
		out = a
		return tx.MarkPetAdopted(s.ctx, petID)
	})
	s.Require().NoError(err)
	return out
}

// -------------------------
// Refugios
// -------------------------

func (s *Suite) TestShelters_CreateGetUpdate() {
	a := s.shelter("A", true)
	b := s.shelter("B", true)
	s.Greater(b.ID, a.ID)

	got, err := s.r.Shelters.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a, got)

	saved, err := s.r.Shelters.Update(s.ctx, a.ID, shelters.Changes{
		Location: strPtr("Cusco"),
		PhotoURL: patch.Of("https://cdn/a.png"),
	})
	s.Require().NoError(err)
	a.Location = "Cusco"
	a.PhotoURL = strPtr("https://cdn/a.png")
	s.Equal(a, saved)

	got, err = s.r.Shelters.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a, got)

	saved, err = s.r.Shelters.Update(s.ctx, a.ID, shelters.Changes{PhotoURL: patch.Null[string]()})
	s.Require().NoError(err)
	s.Nil(saved.PhotoURL)
	got, _ = s.r.Shelters.GetByID(s.ctx, a.ID)
	s.Nil(got.PhotoURL)
	s.Equal("Cusco", got.Location)
}

func (s *Suite) TestShelters_UpdateKeepsInterleavedSoftDelete() {
	sh := s.shelter("A", true)
	_, err := s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{PhotoURL: patch.Of("https://cdn/a.png")})
	s.Require().NoError(err)

	// una edición leyó la fila antes de la baja y escribe después
	stale, err := s.r.Shelters.GetByID(s.ctx, sh.ID)
	s.Require().NoError(err)
	s.True(stale.Active)

	_, err = s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{Active: boolPtr(false)})
	s.Require().NoError(err)

	saved, err := s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{Name: strPtr("B")})
	s.Require().NoError(err)
	s.Equal("B", saved.Name)
	s.False(saved.Active)

	got, err := s.r.Shelters.GetByID(s.ctx, sh.ID)
	s.Require().NoError(err)
	s.Equal("B", got.Name)
	s.Equal("Lima", got.Location)
	s.False(got.Active)
	s.Require().NotNil(got.PhotoURL)
	s.Equal("https://cdn/a.png", *got.PhotoURL)
}

func (s *Suite) TestShelters_ConcurrentRenameAndSoftDelete() {
	sh := s.shelter("A", true)

	var wg sync.WaitGroup
	errs := make(chan error, 9)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{Name: strPtr("B")})
			errs <- err
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{Active: boolPtr(false)})
		errs <- err
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}
	got, err := s.r.Shelters.GetByID(s.ctx, sh.ID)
	s.Require().NoError(err)
	s.Equal("B", got.Name)
	s.False(got.Active)
}

func (s *Suite) TestShelters_EmptyChangesReturnRow() {
	sh := s.shelter("A", true)

	got, err := s.r.Shelters.Update(s.ctx, sh.ID, shelters.Changes{})
	s.Require().NoError(err)
	s.Equal(sh, got)
}

func (s *Suite) TestShelters_NotFound() {
	_, err := s.r.Shelters.GetByID(s.ctx, 12345)
	s.ErrorIs(err, apperr.ErrNotFound)

	_, err = s.r.Shelters.Update(s.ctx, 12345, shelters.Changes{Name: strPtr("x")})
	s.ErrorIs(err, apperr.ErrNotFound)

	_, err = s.r.Shelters.Update(s.ctx, 12345, shelters.Changes{})
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *Suite) TestShelters_ListFilterAndPagination() {
	a := s.shelter("A", true)
	s.shelter("B", false)
	c := s.shelter("C", true)
	d := s.shelter("D", true)

	all, err := s.r.Shelters.List(s.ctx, shelters.ListFilter{Limit: 10})
	s.Require().NoError(err)
	s.Len(all, 4)

	active, err := s.r.Shelters.List(s.ctx, shelters.ListFilter{OnlyActive: true, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{a.ID, c.ID, d.ID}, shelterIDs(active))

	page, err := s.r.Shelters.List(s.ctx, shelters.ListFilter{OnlyActive: true, Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Equal([]int64{c.ID}, shelterIDs(page))

	empty, err := s.r.Shelters.List(s.ctx, shelters.ListFilter{Offset: 10, Limit: 10})
	s.Require().NoError(err)
	s.Empty(empty)
}

func shelterIDs(items []shelters.Shelter) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// -------------------------
// Mascotas
// -------------------------

func (s *Suite) TestPets_CreateGetRoundTrip() {
	sh := s.shelter("A", true)

	p, err := s.r.Pets.Create(s.ctx, pets.Pet{
		Name:      "Michi",
		Species:   pets.SpeciesCat,
		Breed:     strPtr("Siamés"),
		Age:       3,
		Sex:       "F",
		Available: true,
		PhotoURL:  strPtr("https://cdn/m.png"),
		ShelterID: sh.ID,
	})
	s.Require().NoError(err)
	s.NotZero(p.ID)

	got, err := s.r.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, got)

	_, err = s.r.Pets.GetByID(s.ctx, p.ID+100)
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *Suite) TestPets_ListFilters() {
	s1 := s.shelter("A", true)
	s2 := s.shelter("B", true)

	cat1 := s.pet("c1", pets.SpeciesCat, s1.ID)
	cat2 := s.pet("c2", pets.SpeciesCat, s2.ID)
	dog := s.pet("d1", pets.SpeciesDog, s1.ID)
	cat3 := s.pet("c3", pets.SpeciesCat, s1.ID)

	_, err := s.r.Pets.Update(s.ctx, cat2.ID, pets.Changes{Available: boolPtr(false)})
	s.Require().NoError(err)

	_, err = s.r.Pets.Update(s.ctx, dog.ID, pets.Changes{PhotoURL: patch.Of("https://cdn/d.png")})
	s.Require().NoError(err)

	cat := pets.SpeciesCat
	got, err := s.r.Pets.List(s.ctx, pets.ListFilter{Species: &cat, OnlyAvailable: true, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{cat1.ID, cat3.ID}, petIDs(got))

	got, err = s.r.Pets.List(s.ctx, pets.ListFilter{Species: &cat, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{cat1.ID, cat2.ID, cat3.ID}, petIDs(got))

	got, err = s.r.Pets.List(s.ctx, pets.ListFilter{ShelterID: &s1.ID, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{cat1.ID, dog.ID, cat3.ID}, petIDs(got))

	got, err = s.r.Pets.List(s.ctx, pets.ListFilter{OnlyWithPhoto: true, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{dog.ID}, petIDs(got))

	got, err = s.r.Pets.List(s.ctx, pets.ListFilter{Offset: 1, Limit: 2})
	s.Require().NoError(err)
	s.Equal([]int64{cat2.ID, dog.ID}, petIDs(got))

	// limit 0 => sin límite
	got, err = s.r.Pets.List(s.ctx, pets.ListFilter{ShelterID: &s1.ID})
	s.Require().NoError(err)
	s.Len(got, 3)
}

func (s *Suite) TestPets_UpdateNeverReactivates() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)

	saved, err := s.r.Pets.Update(s.ctx, p.ID, pets.Changes{Available: boolPtr(false)})
	s.Require().NoError(err)
	s.False(saved.Available)

	saved, err = s.r.Pets.Update(s.ctx, p.ID, pets.Changes{Available: boolPtr(true), Name: strPtr("Firu")})
	s.Require().NoError(err)
	s.False(saved.Available)
	s.Equal("Firu", saved.Name)

	got, _ := s.r.Pets.GetByID(s.ctx, p.ID)
	s.False(got.Available)
}

func (s *Suite) TestPets_UpdateOnlySuppliedColumns() {
	s1 := s.shelter("A", true)
	s2 := s.shelter("B", true)
	p, err := s.r.Pets.Create(s.ctx, pets.Pet{
		Name:      "Michi",
		Species:   pets.SpeciesCat,
		Breed:     strPtr("Siamés"),
		Age:       3,
		Sex:       "F",
		Available: true,
		ShelterID: s1.ID,
	})
	s.Require().NoError(err)

	// dos ediciones sobre columnas distintas, la baja entre medio
	_, err = s.r.Pets.Update(s.ctx, p.ID, pets.Changes{PhotoURL: patch.Of("https://cdn/m.png")})
	s.Require().NoError(err)
	_, err = s.r.Pets.Update(s.ctx, p.ID, pets.Changes{Available: boolPtr(false)})
	s.Require().NoError(err)
	saved, err := s.r.Pets.Update(s.ctx, p.ID, pets.Changes{
		Name:      strPtr("Pelusa"),
		Breed:     patch.Null[string](),
		ShelterID: &s2.ID,
	})
	s.Require().NoError(err)

	want := p
	want.Name = "Pelusa"
	want.Breed = nil
	want.Available = false
	want.PhotoURL = strPtr("https://cdn/m.png")
	want.ShelterID = s2.ID
	s.Equal(want, saved)

	got, err := s.r.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(want, got)

	got, err = s.r.Pets.Update(s.ctx, p.ID, pets.Changes{})
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *Suite) TestPets_UnknownShelter() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)

	missing := sh.ID + 100
	_, err := s.r.Pets.Update(s.ctx, p.ID, pets.Changes{ShelterID: &missing, Name: strPtr("x")})
	s.ErrorIs(err, pets.ErrShelterNotFound)

	got, err := s.r.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p, got)

	_, err = s.r.Pets.Create(s.ctx, pets.Pet{Name: "y", Species: pets.SpeciesCat, Sex: "F", Available: true, ShelterID: missing})
	s.ErrorIs(err, pets.ErrShelterNotFound)
}

func (s *Suite) TestPets_UpdateNotFound() {
	_, err := s.r.Pets.Update(s.ctx, 999, pets.Changes{Name: strPtr("x")})
	s.ErrorIs(err, apperr.ErrNotFound)
	s.NotErrorIs(err, pets.ErrShelterNotFound)
}

func petIDs(items []pets.Pet) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// -------------------------
// Adopciones
// -------------------------

func (s *Suite) TestAdoptions_CommitFlipsPet() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)

	a := s.adopt(p.ID, sh.ID, "2024-03-15")
	s.NotZero(a.ID)
	s.Equal("2024-03-15", a.Date.Format("2006-01-02"))

	got, err := s.r.Pets.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.False(got.Available)

	list, err := s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(a, list[0])
}

func (s *Suite) TestAdoptions_TxView() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)

	err := s.r.Adoptions.RunInTx(s.ctx, func(tx adoptions.Tx) error {
		ok, err := tx.PetAvailable(s.ctx, p.ID)
		s.Require().NoError(err)
		s.True(ok)

		_, err = tx.PetAvailable(s.ctx, p.ID+100)
		s.ErrorIs(err, apperr.ErrNotFound)

		exists, err := tx.ShelterExists(s.ctx, sh.ID)
		s.Require().NoError(err)
		s.True(exists)

		exists, err = tx.ShelterExists(s.ctx, sh.ID+100)
		s.Require().NoError(err)
		s.False(exists)

		has, err := tx.HasAdoption(s.ctx, p.ID)
		s.Require().NoError(err)
		s.False(has)
		return nil
	})
	s.Require().NoError(err)
}

func (s *Suite) TestAdoptions_RollbackOnError() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)
	boom := errors.New("boom")

	err := s.r.Adoptions.RunInTx(s.ctx, func(tx adoptions.Tx) error {
		if _, err := tx.Insert(s.ctx, adoptions.Adoption{Adopter: "Ana", Date: day("2024-01-01"), PetID: p.ID, ShelterID: sh.ID}); err != nil {
			return err
		}
		if err := tx.MarkPetAdopted(s.ctx, p.ID); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	got, _ := s.r.Pets.GetByID(s.ctx, p.ID)
	s.True(got.Available)

	list, err := s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Limit: 10})
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *Suite) TestAdoptions_UniquePerPet() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)
	s.adopt(p.ID, sh.ID, "2024-01-01")

	err := s.r.Adoptions.RunInTx(s.ctx, func(tx adoptions.Tx) error {
		has, err := tx.HasAdoption(s.ctx, p.ID)
		s.Require().NoError(err)
		s.True(has)

		_, err = tx.Insert(s.ctx, adoptions.Adoption{Adopter: "Beto", Date: day("2024-02-01"), PetID: p.ID, ShelterID: sh.ID})
		return err
	})
	s.ErrorIs(err, apperr.ErrConflict)

	list, _ := s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Limit: 10})
	s.Len(list, 1)
}

func (s *Suite) TestAdoptions_ListFilters() {
	s1 := s.shelter("A", true)
	s2 := s.shelter("B", true)
	p1 := s.pet("p1", pets.SpeciesDog, s1.ID)
	p2 := s.pet("p2", pets.SpeciesDog, s1.ID)
	p3 := s.pet("p3", pets.SpeciesCat, s2.ID)

	a1 := s.adopt(p1.ID, s1.ID, "2023-12-31")
	a2 := s.adopt(p2.ID, s1.ID, "2024-01-01")
	a3 := s.adopt(p3.ID, s2.ID, "2024-06-15")

	y2024 := 2024
	got, err := s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Year: &y2024, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{a2.ID, a3.ID}, adoptionIDs(got))

	got, err = s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Year: &y2024, ShelterID: &s1.ID, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{a2.ID}, adoptionIDs(got))

	got, err = s.r.Adoptions.List(s.ctx, adoptions.ListFilter{PetID: &p1.ID, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{a1.ID}, adoptionIDs(got))

	got, err = s.r.Adoptions.List(s.ctx, adoptions.ListFilter{Offset: 2, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]int64{a3.ID}, adoptionIDs(got))
}

// TestAdoptions_ConcurrentSamePet corre el servicio real contra el adapter.
func (s *Suite) TestAdoptions_ConcurrentSamePet() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)
	svc := adoptions.NewService(s.r.Adoptions, nil)

	const n = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
		others    []error
	)
	start := make(chan struct{})
	date := day("2024-03-15")
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Create(s.ctx, adoptions.CreateInput{PetID: p.ID, ShelterID: sh.ID, Adopter: "Ana", Date: &date})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, apperr.ErrConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Empty(others)
	s.Equal(1, ok)
	s.Equal(n-1, conflicts)

	list, err := s.r.Adoptions.List(s.ctx, adoptions.ListFilter{PetID: &p.ID, Limit: 10})
	s.Require().NoError(err)
	s.Len(list, 1)

	got, _ := s.r.Pets.GetByID(s.ctx, p.ID)
	s.False(got.Available)
}

func adoptionIDs(items []adoptions.Adoption) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// -------------------------
// Historial de cuidado
// -------------------------

func (s *Suite) TestCare_AppendAndList() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)
	other := s.pet("Otro", pets.SpeciesDog, sh.ID)

	e1, err := s.r.Care.Append(s.ctx, care.Event{Type: "vacuna", Cost: 20, Date: day("2024-01-05"), PetID: p.ID})
	s.Require().NoError(err)
	e2, err := s.r.Care.Append(s.ctx, care.Event{Type: "baño", Cost: 12.5, Date: day("2024-03-01"), PetID: p.ID})
	s.Require().NoError(err)
	e3, err := s.r.Care.Append(s.ctx, care.Event{Type: "control", Cost: 0, Date: day("2024-03-01"), PetID: p.ID})
	s.Require().NoError(err)
	_, err = s.r.Care.Append(s.ctx, care.Event{Type: "control", Cost: 99, Date: day("2024-03-01"), PetID: other.ID})
	s.Require().NoError(err)

	got, err := s.r.Care.ListByPet(s.ctx, p.ID, 0, 20)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal([]int64{e3.ID, e2.ID, e1.ID}, []int64{got[0].ID, got[1].ID, got[2].ID})
	s.Equal(e1, got[2])

	got, err = s.r.Care.ListByPet(s.ctx, p.ID, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(e2.ID, got[0].ID)

	t, err := s.r.Care.TotalsByPet(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(3, t.Events)
	s.InDelta(32.5, t.Cost, 1e-9)
}

func (s *Suite) TestCare_UnknownPet() {
	_, err := s.r.Care.Append(s.ctx, care.Event{Type: "vacuna", Cost: 1, Date: day("2024-01-01"), PetID: 777})
	s.ErrorIs(err, apperr.ErrNotFound)

	got, err := s.r.Care.ListByPet(s.ctx, 777, 0, 20)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *Suite) TestCare_TotalsZero() {
	sh := s.shelter("A", true)
	p := s.pet("Firulais", pets.SpeciesDog, sh.ID)

	t, err := s.r.Care.TotalsByPet(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(care.Totals{}, t)
}

// -------------------------
// Estadísticas
// -------------------------

func (s *Suite) TestStats_Aggregates() {
	sh := s.shelter("A", true)
	s.shelter("B", false)
	d1 := s.pet("d1", pets.SpeciesDog, sh.ID)
	s.pet("d2", pets.SpeciesDog, sh.ID)
	c1 := s.pet("c1", pets.SpeciesCat, sh.ID)

	s.adopt(d1.ID, sh.ID, "2021-05-01")
	s.adopt(c1.ID, sh.ID, "2024-03-15")

	_, err := s.r.Care.Append(s.ctx, care.Event{Type: "vacuna", Cost: 10, Date: day("2024-01-01"), PetID: d1.ID})
	s.Require().NoError(err)
	_, err = s.r.Care.Append(s.ctx, care.Event{Type: "vacuna", Cost: 5.25, Date: day("2024-01-02"), PetID: c1.ID})
	s.Require().NoError(err)

	n, err := s.r.Stats.CountShelters(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	total, active, err := s.r.Stats.CountPets(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Equal(1, active)

	bySpecies, err := s.r.Stats.PetsBySpecies(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int{"Dog": 2, "Cat": 1}, bySpecies)

	n, err = s.r.Stats.CountAdoptions(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	ct, err := s.r.Stats.CareTotals(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, ct.Events)
	s.InDelta(15.25, ct.Cost, 1e-9)

	all, err := s.r.Stats.AdoptionDates(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 2)

	since := day("2022-01-01")
	recent, err := s.r.Stats.AdoptionDates(s.ctx, &since)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal("2024-03-15", recent[0].Format("2006-01-02"))
}

func (s *Suite) TestStats_Empty() {
	ct, err := s.r.Stats.CareTotals(s.ctx)
	s.Require().NoError(err)
	s.Equal(stats.CareTotals{}, ct)

	bySpecies, err := s.r.Stats.PetsBySpecies(s.ctx)
	s.Require().NoError(err)
	s.Empty(bySpecies)
}
