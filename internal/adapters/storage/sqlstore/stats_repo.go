package sqlstore

import (
	"context"
	"fmt"
	"time"

	"adopciones-api/internal/domain/stats"
)

var _ stats.Repository = (*StatsRepo)(nil)

type StatsRepo struct {
	db *DB
}

func NewStatsRepo(db *DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) CountShelters(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM refugio`); err != nil {
		return 0, fmt.Errorf("count refugios: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CountPets(ctx context.Context) (int, int, error) {
	var row struct {
		Total  int `db:"total"`
		Active int `db:"activas"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN estado THEN 1 ELSE 0 END), 0) AS activas
		FROM mascota`)
	if err != nil {
		return 0, 0, fmt.Errorf("count mascotas: %w", err)
	}
	return row.Total, row.Active, nil
}

func (r *StatsRepo) PetsBySpecies(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Species string `db:"especie"`
		Total   int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT especie, COUNT(*) AS total FROM mascota GROUP BY especie`); err != nil {
		return nil, fmt.Errorf("mascotas por especie: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Species] = row.Total
	}
	return out, nil
}

func (r *StatsRepo) CountAdoptions(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM adopcion`); err != nil {
		return 0, fmt.Errorf("count adopciones: %w", err)
	}
	return n, nil
}

func (r *StatsRepo) CareTotals(ctx context.Context) (stats.CareTotals, error) {
	var row struct {
		Events int     `db:"eventos"`
		Cost   float64 `db:"costo"`
	}
	err := r.db.GetContext(ctx, &row, `SELECT COUNT(*) AS eventos, COALESCE(SUM(costo), 0) AS costo FROM historialcuidado`)
	if err != nil {
		return stats.CareTotals{}, fmt.Errorf("totales cuidado: %w", err)
	}
	return stats.CareTotals{Events: row.Events, Cost: row.Cost}, nil
}

func (r *StatsRepo) AdoptionDates(ctx context.Context, since *time.Time) ([]time.Time, error) {
	var w where
	if since != nil {
		w.add("fecha_adopcion >= ?", formatDate(*since))
	}

	var dates []dateValue
	q := `SELECT fecha_adopcion FROM adopcion` + w.String() + ` ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &dates, r.db.Rebind(q), w.args...); err != nil {
		return nil, fmt.Errorf("fechas de adopción: %w", err)
	}

	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Time)
	}
	return out, nil
}
