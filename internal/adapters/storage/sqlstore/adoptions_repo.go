package sqlstore

import (
	"context"
	"fmt"

	"adopciones-api/internal/domain/adoptions"
	"adopciones-api/internal/platform/apperr"

	"github.com/jmoiron/sqlx"
)

const adoptionColumns = `id, adoptante, fecha_adopcion, mascota_id, refugio_id`

type adoptionRow struct {
	ID            int64     `db:"id"`
	Adoptante     string    `db:"adoptante"`
	FechaAdopcion dateValue `db:"fecha_adopcion"`
	MascotaID     int64     `db:"mascota_id"`
	RefugioID     int64     `db:"refugio_id"`
}

func (r adoptionRow) toDomain() adoptions.Adoption {
	return adoptions.Adoption{
		ID:        r.ID,
		Adopter:   r.Adoptante,
		Date:      r.FechaAdopcion.Time,
		PetID:     r.MascotaID,
		ShelterID: r.RefugioID,
	}
}

var _ adoptions.Repository = (*AdoptionRepo)(nil)

type AdoptionRepo struct {
	db *DB
}

func NewAdoptionRepo(db *DB) *AdoptionRepo {
	return &AdoptionRepo{db: db}
}

func (r *AdoptionRepo) RunInTx(ctx context.Context, fn func(tx adoptions.Tx) error) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&adoptionTx{tx: tx, lock: r.db.forUpdate()})
	})
}

func (r *AdoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.Adoption, error) {
	var w where
	if f.Year != nil {
		w.add("fecha_adopcion >= ? AND fecha_adopcion <= ?",
			fmt.Sprintf("%04d-01-01", *f.Year), fmt.Sprintf("%04d-12-31", *f.Year))
	}
	if f.ShelterID != nil {
		w.add("refugio_id = ?", *f.ShelterID)
	}
	if f.PetID != nil {
		w.add("mascota_id = ?", *f.PetID)
	}
	pageSQL, pageArgs := r.db.page(f.Offset, f.Limit)

	q := `SELECT ` + adoptionColumns + ` FROM adopcion` + w.String() + ` ORDER BY id ASC` + pageSQL

	var rows []adoptionRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), append(w.args, pageArgs...)...); err != nil {
		return nil, fmt.Errorf("list adopciones: %w", err)
	}

	out := make([]adoptions.Adoption, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type adoptionTx struct {
	tx   *sqlx.Tx
	lock string
}

// PetAvailable bloquea la fila de la mascota hasta el fin de la transacción.
func (t *adoptionTx) PetAvailable(ctx context.Context, petID int64) (bool, error) {
	var estado bool
	err := t.tx.GetContext(ctx, &estado, t.tx.Rebind(`SELECT estado FROM mascota WHERE id = ?`+t.lock), petID)
	if err != nil {
		return false, notFound(err, "mascota", petID)
	}
	return estado, nil
}

func (t *adoptionTx) ShelterExists(ctx context.Context, shelterID int64) (bool, error) {
	var n int
	if err := t.tx.GetContext(ctx, &n, t.tx.Rebind(`SELECT COUNT(*) FROM refugio WHERE id = ?`), shelterID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *adoptionTx) HasAdoption(ctx context.Context, petID int64) (bool, error) {
	var n int
	if err := t.tx.GetContext(ctx, &n, t.tx.Rebind(`SELECT COUNT(*) FROM adopcion WHERE mascota_id = ?`), petID); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *adoptionTx) Insert(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	var row adoptionRow
	err := t.tx.GetContext(ctx, &row, t.tx.Rebind(`
		INSERT INTO adopcion (adoptante, fecha_adopcion, mascota_id, refugio_id)
		VALUES (?, ?, ?, ?)
		RETURNING `+adoptionColumns),
		a.Adopter, formatDate(a.Date), a.PetID, a.ShelterID,
	)
	switch {
	case err == nil:
		return row.toDomain(), nil
	case isUniqueViolation(err):
		return adoptions.Adoption{}, fmt.Errorf("adopción de mascota %d: %w", a.PetID, apperr.ErrConflict)
	case isForeignKeyViolation(err):
		return adoptions.Adoption{}, fmt.Errorf("mascota %d o refugio %d: %w", a.PetID, a.ShelterID, apperr.ErrNotFound)
	default:
		return adoptions.Adoption{}, fmt.Errorf("insert adopcion: %w", err)
	}
}

func (t *adoptionTx) MarkPetAdopted(ctx context.Context, petID int64) error {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(`UPDATE mascota SET estado = ? WHERE id = ?`), false, petID)
	if err != nil {
		return fmt.Errorf("update mascota: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("mascota %d: %w", petID, apperr.ErrNotFound)
	}
	return nil
}
