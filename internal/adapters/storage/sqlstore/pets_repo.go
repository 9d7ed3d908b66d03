package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adopciones-api/internal/domain/pets"
	"adopciones-api/internal/platform/apperr"

	"github.com/jmoiron/sqlx"
)

const petColumns = `id, nombre, especie, raza, edad, sexo, estado, foto_url, refugio_id`

type petRow struct {
	ID        int64          `db:"id"`
	Nombre    string         `db:"nombre"`
	Especie   string         `db:"especie"`
	Raza      sql.NullString `db:"raza"`
	Edad      int            `db:"edad"`
	Sexo      string         `db:"sexo"`
	Estado    bool           `db:"estado"`
	FotoURL   sql.NullString `db:"foto_url"`
	RefugioID int64          `db:"refugio_id"`
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:        r.ID,
		Name:      r.Nombre,
		Species:   pets.Species(r.Especie),
		Breed:     fromNullString(r.Raza),
		Age:       r.Edad,
		Sex:       r.Sexo,
		Available: r.Estado,
		PhotoURL:  fromNullString(r.FotoURL),
		ShelterID: r.RefugioID,
	}
}

var _ pets.Repository = (*PetRepo)(nil)

type PetRepo struct {
	db *DB
}

func NewPetRepo(db *DB) *PetRepo {
	return &PetRepo{db: db}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Pet
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := shelterMustExist(ctx, tx, p.ShelterID); err != nil {
			return err
		}

		var row petRow
		err := tx.GetContext(ctx, &row, tx.Rebind(`
			INSERT INTO mascota (nombre, especie, raza, edad, sexo, estado, foto_url, refugio_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+petColumns),
			p.Name, string(p.Species), toNullString(p.Breed), p.Age, p.Sex, p.Available, toNullString(p.PhotoURL), p.ShelterID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("refugio %d: %w", p.ShelterID, pets.ErrShelterNotFound)
			}
			return fmt.Errorf("insert mascota: %w", err)
		}
		out = row.toDomain()
		return nil
	})
	return out, err
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	var row petRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`SELECT `+petColumns+` FROM mascota WHERE id = ?`), id)
	if err != nil {
		return pets.Pet{}, notFound(err, "mascota", id)
	}
	return row.toDomain(), nil
}

func (r *PetRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	var w where
	if f.ShelterID != nil {
		w.add("refugio_id = ?", *f.ShelterID)
	}
	if f.Species != nil {
		w.add("especie = ?", string(*f.Species))
	}
	if f.OnlyAvailable {
		w.add("estado = ?", true)
	}
	if f.OnlyWithPhoto {
		w.add("foto_url IS NOT NULL")
	}
	pageSQL, pageArgs := r.db.page(f.Offset, f.Limit)

	q := `SELECT ` + petColumns + ` FROM mascota` + w.String() + ` ORDER BY id ASC` + pageSQL

	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), append(w.args, pageArgs...)...); err != nil {
		return nil, fmt.Errorf("list mascotas: %w", err)
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update escribe solo las columnas presentes en ch. estado nunca pasa de
// false a true: una adopción concurrente gana siempre sobre una edición.
func (r *PetRepo) Update(ctx context.Context, id int64, ch pets.Changes) (pets.Pet, error) {
	var sets set
	if ch.Name != nil {
		sets.add("nombre = ?", *ch.Name)
	}
	if ch.Species != nil {
		sets.add("especie = ?", string(*ch.Species))
	}
	if ch.Breed.Set {
		sets.add("raza = ?", toNullString(ch.Breed.Value))
	}
	if ch.Age != nil {
		sets.add("edad = ?", *ch.Age)
	}
	if ch.Sex != nil {
		sets.add("sexo = ?", *ch.Sex)
	}
	if ch.Available != nil {
		sets.add("estado = estado AND ?", *ch.Available)
	}
	if ch.PhotoURL.Set {
		sets.add("foto_url = ?", toNullString(ch.PhotoURL.Value))
	}
	if ch.ShelterID != nil {
		sets.add("refugio_id = ?", *ch.ShelterID)
	}
	if sets.empty() {
		return r.GetByID(ctx, id)
	}

	var out pets.Pet
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if ch.ShelterID != nil {
			if err := shelterMustExist(ctx, tx, *ch.ShelterID); err != nil {
				return err
			}
		}

		var row petRow
		err := tx.GetContext(ctx, &row, tx.Rebind(`
			UPDATE mascota
			SET `+sets.String()+`
			WHERE id = ?
			RETURNING `+petColumns),
			append(sets.args, id)...,
		)
		if err != nil {
			if ch.ShelterID != nil && isForeignKeyViolation(err) {
				return fmt.Errorf("refugio %d: %w", *ch.ShelterID, pets.ErrShelterNotFound)
			}
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("mascota %d: %w", id, apperr.ErrNotFound)
			}
			return fmt.Errorf("update mascota: %w", err)
		}
		out = row.toDomain()
		return nil
	})
	return out, err
}

// shelterMustExist reporta pets.ErrShelterNotFound para que el service no lo
// confunda con una mascota inexistente.
func shelterMustExist(ctx context.Context, tx *sqlx.Tx, id int64) error {
	var one int
	err := tx.GetContext(ctx, &one, tx.Rebind(`SELECT 1 FROM refugio WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("refugio %d: %w", id, pets.ErrShelterNotFound)
	}
	return err
}

func petMustExist(ctx context.Context, tx *sqlx.Tx, id int64) error {
	var one int
	err := tx.GetContext(ctx, &one, tx.Rebind(`SELECT 1 FROM mascota WHERE id = ?`), id)
	return notFound(err, "mascota", id)
}

// withTx hace commit si fn devuelve nil y rollback en cualquier otro caso.
func withTx(ctx context.Context, db *DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
