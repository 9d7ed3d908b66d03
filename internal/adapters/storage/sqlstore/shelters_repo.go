package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adopciones-api/internal/domain/shelters"
	"adopciones-api/internal/platform/apperr"
)

const shelterColumns = `id, nombre, ubicacion, estado, foto_url`

type shelterRow struct {
	ID        int64          `db:"id"`
	Nombre    string         `db:"nombre"`
	Ubicacion string         `db:"ubicacion"`
	Estado    bool           `db:"estado"`
	FotoURL   sql.NullString `db:"foto_url"`
}

func (r shelterRow) toDomain() shelters.Shelter {
	return shelters.Shelter{
		ID:       r.ID,
		Name:     r.Nombre,
		Location: r.Ubicacion,
		Active:   r.Estado,
		PhotoURL: fromNullString(r.FotoURL),
	}
}

var _ shelters.Repository = (*ShelterRepo)(nil)

type ShelterRepo struct {
	db *DB
}

func NewShelterRepo(db *DB) *ShelterRepo {
	return &ShelterRepo{db: db}
}

func (r *ShelterRepo) Create(ctx context.Context, s shelters.Shelter) (shelters.Shelter, error) {
	var row shelterRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
		INSERT INTO refugio (nombre, ubicacion, estado, foto_url)
		VALUES (?, ?, ?, ?)
		RETURNING `+shelterColumns),
		s.Name, s.Location, s.Active, toNullString(s.PhotoURL),
	)
	if err != nil {
		return shelters.Shelter{}, fmt.Errorf("insert refugio: %w", err)
	}
	return row.toDomain(), nil
}

func (r *ShelterRepo) GetByID(ctx context.Context, id int64) (shelters.Shelter, error) {
	var row shelterRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`SELECT `+shelterColumns+` FROM refugio WHERE id = ?`), id)
	if err != nil {
		return shelters.Shelter{}, notFound(err, "refugio", id)
	}
	return row.toDomain(), nil
}

func (r *ShelterRepo) List(ctx context.Context, f shelters.ListFilter) ([]shelters.Shelter, error) {
	var w where
	if f.OnlyActive {
		w.add("estado = ?", true)
	}
	pageSQL, pageArgs := r.db.page(f.Offset, f.Limit)

	q := `SELECT ` + shelterColumns + ` FROM refugio` + w.String() + ` ORDER BY id ASC` + pageSQL

	var rows []shelterRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), append(w.args, pageArgs...)...); err != nil {
		return nil, fmt.Errorf("list refugios: %w", err)
	}

	out := make([]shelters.Shelter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update escribe solo las columnas presentes en ch, en una sola sentencia.
func (r *ShelterRepo) Update(ctx context.Context, id int64, ch shelters.Changes) (shelters.Shelter, error) {
	var sets set
	if ch.Name != nil {
		sets.add("nombre = ?", *ch.Name)
	}
	if ch.Location != nil {
		sets.add("ubicacion = ?", *ch.Location)
	}
	if ch.Active != nil {
		sets.add("estado = ?", *ch.Active)
	}
	if ch.PhotoURL.Set {
		sets.add("foto_url = ?", toNullString(ch.PhotoURL.Value))
	}
	if sets.empty() {
		return r.GetByID(ctx, id)
	}

	var row shelterRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
		UPDATE refugio
		SET `+sets.String()+`
		WHERE id = ?
		RETURNING `+shelterColumns),
		append(sets.args, id)...,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, fmt.Errorf("refugio %d: %w", id, apperr.ErrNotFound)
		}
		return shelters.Shelter{}, fmt.Errorf("update refugio: %w", err)
	}
	return row.toDomain(), nil
}
