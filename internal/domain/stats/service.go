package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// MonthWindow es la cantidad de meses de la serie mensual (5 años).
const MonthWindow = 60

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Summary lanza las consultas en paralelo; la primera que falle cancela el resto.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountShelters(gctx)
		out.Shelters = n
		return err
	})
	g.Go(func() error {
		total, active, err := s.repo.CountPets(gctx)
		out.Pets.Total = total
		out.Pets.Active = active
		out.Pets.Inactive = total - active
		return err
	})
	g.Go(func() error {
		m, err := s.repo.PetsBySpecies(gctx)
		out.Pets.BySpecies = m
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountAdoptions(gctx)
		out.Adoptions = n
		return err
	})
	g.Go(func() error {
		t, err := s.repo.CareTotals(gctx)
		out.Care = t
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	if out.Pets.BySpecies == nil {
		out.Pets.BySpecies = map[string]int{}
	}
	return out, nil
}

// AdoptionsByYear agrupa por año calendario, en orden ascendente.
func (s *Service) AdoptionsByYear(ctx context.Context) ([]YearCount, error) {
	dates, err := s.repo.AdoptionDates(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("adoptions by year: %w", err)
	}

	counts := map[int]int{}
	for _, d := range dates {
		counts[d.Year()]++
	}

	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Total: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// AdoptionsByMonth devuelve exactamente MonthWindow meses consecutivos que
// terminan en el mes actual, con 0 en los meses sin adopciones.
func (s *Service) AdoptionsByMonth(ctx context.Context) ([]MonthCount, error) {
	months := monthLabels(s.now(), MonthWindow)

	start, _ := time.Parse("2006-01", months[0])
	dates, err := s.repo.AdoptionDates(ctx, &start)
	if err != nil {
		return nil, fmt.Errorf("adoptions by month: %w", err)
	}

	counts := make(map[string]int, len(dates))
	for _, d := range dates {
		counts[d.Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Month: m, Total: counts[m]})
	}
	return out, nil
}

// monthLabels arma n etiquetas YYYY-MM consecutivas que terminan en el mes de now.
func monthLabels(now time.Time, n int) []string {
	year, month := now.Year(), int(now.Month())

	// retroceder n-1 meses
	month -= n - 1
	for month < 1 {
		month += 12
		year--
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("%04d-%02d", year, month))
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return out
}
