package pets

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"adopciones-api/internal/platform/apperr"
	"adopciones-api/internal/platform/patch"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	seq     int64
	byID    map[int64]Pet
	changes []Changes

	// beforeUpdate corre entre la validación del service y la escritura.
	beforeUpdate func()
	// missingShelters simula refugios que desaparecen antes de escribir.
	missingShelters map[int64]bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) (Pet, error) {
	r.seq++
	p.ID = r.seq
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, fmt.Errorf("pet %d: %w", id, apperr.ErrNotFound)
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
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
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Update(_ context.Context, id int64, ch Changes) (Pet, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.ErrNotFound
	}
	if ch.ShelterID != nil && r.missingShelters[*ch.ShelterID] {
		return Pet{}, fmt.Errorf("refugio %d: %w", *ch.ShelterID, ErrShelterNotFound)
	}
	r.changes = append(r.changes, ch)
	ch.Apply(&p)
	r.byID[id] = p
	return p, nil
}

type testShelters map[int64]bool

func (s testShelters) Exists(_ context.Context, id int64) error {
	if !s[id] {
		return apperr.New("refugio no encontrado", apperr.ErrNotFound)
	}
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	return NewService(repo, testShelters{1: true, 2: true}), repo
}

func intPtr(v int) *int { return &v }

func validInput() CreateInput {
	return CreateInput{
		Name:      "Michi",
		Species:   "Cat",
		Age:       intPtr(2),
		Sex:       "F",
		ShelterID: 1,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_OK(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 || !p.Available || p.Species != SpeciesCat || p.Breed != nil {
		t.Fatalf("unexpected pet: %+v", p)
	}
}

func TestService_Create_UnknownShelter(t *testing.T) {
	svc, repo := newTestService()

	in := validInput()
	in.ShelterID = 99
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no pet stored")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := map[string]func(*CreateInput){
		"especie":    func(in *CreateInput) { in.Species = "Hamster" },
		"edad":       func(in *CreateInput) { in.Age = nil },
		"sexo":       func(in *CreateInput) { in.Sex = " " },
		"nombre":     func(in *CreateInput) { in.Name = "" },
		"refugio_id": func(in *CreateInput) { in.ShelterID = 0 },
	}
	for field, mutate := range cases {
		in := validInput()
		mutate(&in)

		_, err := svc.Create(context.Background(), in)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", field, err)
		}
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("%s: expected field error, got %v", field, ve.Fields)
		}
	}
}

func TestService_Create_SpeciesIsCaseSensitive(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Species = "cat"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for lowercase species, got %v", err)
	}
}

func TestService_Update_OnlyTouchesSuppliedFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := validInput()
	breed := "Siamés"
	in.Breed = &breed
	orig, _ := svc.Create(ctx, in)

	got, err := svc.Update(ctx, orig.ID, UpdateInput{Age: patch.Of(3)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := orig
	want.Age = 3
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestService_Update_MovesToExistingShelterOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())

	got, err := svc.Update(ctx, orig.ID, UpdateInput{ShelterID: patch.Of(int64(2))})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ShelterID != 2 {
		t.Fatalf("expected shelter 2, got %d", got.ShelterID)
	}

	_, err = svc.Update(ctx, orig.ID, UpdateInput{ShelterID: patch.Of(int64(50))})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for unknown shelter, got %v", err)
	}
}

func TestService_Update_ShelterRemovedBeforeWrite(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())
	repo.missingShelters = map[int64]bool{2: true}

	_, err := svc.Update(ctx, orig.ID, UpdateInput{ShelterID: patch.Of(int64(2))})
	if !errors.Is(err, ErrShelterNotFound) {
		t.Fatalf("expected ErrShelterNotFound, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("missing shelter must not be reported as missing pet: %v", err)
	}
}

func TestService_Update_SendsOnlySuppliedColumns(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())

	if _, err := svc.Update(ctx, orig.ID, UpdateInput{Name: patch.Of(" Pelusa "), Breed: patch.Of("  ")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(repo.changes) != 1 {
		t.Fatalf("expected one write, got %d", len(repo.changes))
	}
	ch := repo.changes[0]
	if ch.Name == nil || *ch.Name != "Pelusa" {
		t.Fatalf("expected trimmed name, got %+v", ch.Name)
	}
	if !ch.Breed.IsNull() {
		t.Fatalf("expected blank breed sent as null, got %+v", ch.Breed)
	}
	if ch.Species != nil || ch.Age != nil || ch.Sex != nil || ch.Available != nil || ch.PhotoURL.Set || ch.ShelterID != nil {
		t.Fatalf("expected unsupplied fields left out, got %+v", ch)
	}
}

func TestService_Update_KeepsConcurrentDeactivation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())

	repo.beforeUpdate = func() {
		repo.beforeUpdate = nil
		p := repo.byID[orig.ID]
		p.Available = false
		repo.byID[orig.ID] = p
	}

	got, err := svc.Update(ctx, orig.ID, UpdateInput{Name: patch.Of("Pelusa")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Available || got.Name != "Pelusa" {
		t.Fatalf("expected renamed unavailable pet, got %+v", got)
	}
}

func TestService_Update_CannotReactivate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())
	if _, err := svc.Deactivate(ctx, orig.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	_, err := svc.Update(ctx, orig.ID, UpdateInput{Available: patch.Of(true)})
	if !errors.Is(err, ErrCannotReactivate) || !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("expected ErrCannotReactivate, got %v", err)
	}
}

func TestService_Update_InvalidSpecies(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())

	for _, f := range []patch.Field[string]{patch.Of("Fish"), patch.Null[string]()} {
		if _, err := svc.Update(ctx, orig.ID, UpdateInput{Species: f}); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestService_Deactivate_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	orig, _ := svc.Create(ctx, validInput())

	first, err := svc.Deactivate(ctx, orig.ID)
	if err != nil {
		t.Fatalf("first Deactivate: %v", err)
	}
	second, err := svc.Deactivate(ctx, orig.ID)
	if err != nil {
		t.Fatalf("second Deactivate: %v", err)
	}
	if first.Available || !reflect.DeepEqual(first, second) {
		t.Fatalf("expected same unavailable state: %+v vs %+v", first, second)
	}
}

func TestService_List_BySpeciesAndAvailability(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cat1, _ := svc.Create(ctx, validInput())
	cat2, _ := svc.Create(ctx, validInput())
	dog := validInput()
	dog.Species = "Dog"
	_, _ = svc.Create(ctx, dog)
	_, _ = svc.Deactivate(ctx, cat2.ID)

	sp := SpeciesCat
	items, err := svc.List(ctx, ListFilter{Species: &sp, OnlyAvailable: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].ID != cat1.ID {
		t.Fatalf("expected only the available cat, got %+v", items)
	}
}

func TestParseSpecies(t *testing.T) {
	for _, s := range []string{"Dog", "Cat", "Rabbit", "Bird"} {
		if _, ok := ParseSpecies(s); !ok {
			t.Fatalf("expected %s to parse", s)
		}
	}
	for _, s := range []string{"", "dog", "Fish"} {
		if _, ok := ParseSpecies(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
