package sqlstore

import (
	"context"
	"fmt"

	"adopciones-api/internal/domain/care"

	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, tipo, costo, fecha, mascota_id`

type eventRow struct {
	ID        int64     `db:"id"`
	Tipo      string    `db:"tipo"`
	Costo     float64   `db:"costo"`
	Fecha     dateValue `db:"fecha"`
	MascotaID int64     `db:"mascota_id"`
}

func (r eventRow) toDomain() care.Event {
	return care.Event{
		ID:    r.ID,
		Type:  r.Tipo,
		Cost:  r.Costo,
		Date:  r.Fecha.Time,
		PetID: r.MascotaID,
	}
}

var _ care.Repository = (*CareRepo)(nil)

type CareRepo struct {
	db *DB
}

func NewCareRepo(db *DB) *CareRepo {
	return &CareRepo{db: db}
}

func (r *CareRepo) Append(ctx context.Context, e care.Event) (care.Event, error) {
	var out care.Event
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := petMustExist(ctx, tx, e.PetID); err != nil {
			return err
		}

		var row eventRow
		err := tx.GetContext(ctx, &row, tx.Rebind(`
			INSERT INTO historialcuidado (tipo, costo, fecha, mascota_id)
			VALUES (?, ?, ?, ?)
			RETURNING `+eventColumns),
			e.Type, e.Cost, formatDate(e.Date), e.PetID,
		)
		if err != nil {
			return fmt.Errorf("insert historialcuidado: %w", err)
		}
		out = row.toDomain()
		return nil
	})
	return out, err
}

func (r *CareRepo) ListByPet(ctx context.Context, petID int64, offset, limit int) ([]care.Event, error) {
	pageSQL, pageArgs := r.db.page(offset, limit)
	q := `SELECT ` + eventColumns + ` FROM historialcuidado
		WHERE mascota_id = ?
		ORDER BY fecha DESC, id DESC` + pageSQL

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), append([]any{petID}, pageArgs...)...); err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}

	out := make([]care.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CareRepo) TotalsByPet(ctx context.Context, petID int64) (care.Totals, error) {
	var row struct {
		Events int     `db:"eventos"`
		Cost   float64 `db:"costo"`
	}
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
		SELECT COUNT(*) AS eventos, COALESCE(SUM(costo), 0) AS costo
		FROM historialcuidado
		WHERE mascota_id = ?`), petID)
	if err != nil {
		return care.Totals{}, fmt.Errorf("totales historial: %w", err)
	}
	return care.Totals{Events: row.Events, Cost: row.Cost}, nil
}
