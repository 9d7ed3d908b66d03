package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	shelters  int
	total     int
	active    int
	species   map[string]int
	adoptions []time.Time
	care      CareTotals

	err error
}

func (r *testRepo) CountShelters(context.Context) (int, error) { return r.shelters, nil }
func (r *testRepo) CountPets(context.Context) (int, int, error) {
	return r.total, r.active, nil
}
func (r *testRepo) PetsBySpecies(context.Context) (map[string]int, error) { return r.species, r.err }
func (r *testRepo) CountAdoptions(context.Context) (int, error)           { return len(r.adoptions), nil }
func (r *testRepo) CareTotals(context.Context) (CareTotals, error)        { return r.care, nil }

func (r *testRepo) AdoptionDates(_ context.Context, since *time.Time) ([]time.Time, error) {
	out := make([]time.Time, 0)
	for _, d := range r.adoptions {
		if since != nil && d.Before(*since) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func fixedNow(s string) func() time.Time {
	return func() time.Time { return day(s).Add(15 * time.Hour) }
}

func TestService_Summary(t *testing.T) {
	repo := &testRepo{
		shelters:  2,
		total:     5,
		active:    3,
		species:   map[string]int{"Dog": 3, "Cat": 2},
		adoptions: []time.Time{day("2024-03-15"), day("2024-04-01")},
		care:      CareTotals{Events: 4, Cost: 80.5},
	}
	svc := NewService(repo)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Shelters:  2,
		Pets:      PetCounts{Total: 5, Active: 3, Inactive: 2, BySpecies: map[string]int{"Dog": 3, "Cat": 2}},
		Adoptions: 2,
		Care:      CareTotals{Events: 4, Cost: 80.5},
	}, s)
}

func TestService_Summary_EmptyStore(t *testing.T) {
	svc := NewService(&testRepo{})

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s.Pets.BySpecies)
	assert.Zero(t, s.Care.Cost)
}

func TestService_Summary_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&testRepo{err: boom})

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_AdoptionsByYear_Ascending(t *testing.T) {
	svc := NewService(&testRepo{adoptions: []time.Time{
		day("2025-01-10"), day("2023-07-01"), day("2025-12-31"), day("2024-02-29"),
	}})

	got, err := svc.AdoptionsByYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []YearCount{{2023, 1}, {2024, 1}, {2025, 2}}, got)
}

func TestService_AdoptionsByMonth_DenseSixtyMonths(t *testing.T) {
	svc := NewService(&testRepo{adoptions: []time.Time{day("2024-03-15")}})
	svc.now = fixedNow("2025-06-10")

	got, err := svc.AdoptionsByMonth(context.Background())
	require.NoError(t, err)
	require.Len(t, got, MonthWindow)

	assert.Equal(t, "2020-07", got[0].Month)
	assert.Equal(t, "2025-06", got[len(got)-1].Month)

	for i := 1; i < len(got); i++ {
		prev, _ := time.Parse("2006-01", got[i-1].Month)
		cur, _ := time.Parse("2006-01", got[i].Month)
		assert.Equal(t, prev.AddDate(0, 1, 0), cur, "months must be consecutive at %d", i)
	}

	for _, m := range got {
		if m.Month == "2024-03" {
			assert.Equal(t, 1, m.Total)
			continue
		}
		assert.Zero(t, m.Total, m.Month)
	}
}

func TestService_AdoptionsByMonth_IgnoresOutsideWindow(t *testing.T) {
	svc := NewService(&testRepo{adoptions: []time.Time{day("2019-01-01"), day("2020-06-30"), day("2020-07-01")}})
	svc.now = fixedNow("2025-06-10")

	got, err := svc.AdoptionsByMonth(context.Background())
	require.NoError(t, err)

	total := 0
	for _, m := range got {
		total += m.Total
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, got[0].Total)
}

func TestMonthLabels_WrapsYear(t *testing.T) {
	cases := []struct {
		now         string
		first, last string
	}{
		{"2025-01-31", "2020-02", "2025-01"},
		{"2025-12-01", "2021-01", "2025-12"},
		{"2024-02-29", "2019-03", "2024-02"},
	}
	for _, tc := range cases {
		t.Run(tc.now, func(t *testing.T) {
			got := monthLabels(day(tc.now), MonthWindow)
			require.Len(t, got, MonthWindow)
			assert.Equal(t, tc.first, got[0])
			assert.Equal(t, tc.last, got[MonthWindow-1])
		})
	}
}
