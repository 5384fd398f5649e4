package treet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/database"
)

type treetRow struct {
	ID             string        `db:"id"`
	Name           string        `db:"name"`
	Category       string        `db:"category"`
	DateMade       sql.NullInt64 `db:"date_made"`
	ExpirationDate sql.NullInt64 `db:"expiration_date"`
	BatchSize      int           `db:"batch_size"`
	Notes          string        `db:"notes"`
	CreatedAt      int64         `db:"created_at"`
	UpdatedAt      int64         `db:"updated_at"`
}

func (r treetRow) toTreet() (*Treet, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	return &Treet{
		ID:             id,
		Name:           r.Name,
		Category:       r.Category,
		DateMade:       database.TimePtr(r.DateMade),
		ExpirationDate: database.TimePtr(r.ExpirationDate),
		BatchSize:      r.BatchSize,
		Notes:          r.Notes,
		CreatedAt:      database.FromMillis(r.CreatedAt),
		UpdatedAt:      database.FromMillis(r.UpdatedAt),
	}, nil
}

const treetColumns = `id,name,category,date_made,expiration_date,batch_size,notes,created_at,updated_at`

type sqlStore struct{ db *sqlx.DB }

// NewSQLRepository returns a Repository backed by db.
func NewSQLRepository(db *sqlx.DB) Repository { return &sqlStore{db: db} }

func (s *sqlStore) Create(ctx context.Context, t *Treet) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
INSERT INTO treets (`+treetColumns+`)
VALUES (?,?,?,?,?,?,?,?,?)`),
		t.ID.String(), t.Name, t.Category,
		database.NullMillis(t.DateMade), database.NullMillis(t.ExpirationDate),
		t.BatchSize, t.Notes,
		database.ToMillis(t.CreatedAt), database.ToMillis(t.UpdatedAt))
	if err != nil {
		return apperr.Unavailable("insert treet", err)
	}
	return nil
}

func (s *sqlStore) GetByID(ctx context.Context, id string) (*Treet, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("treet %s not found", id)
	}
	var row treetRow
	err = s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT `+treetColumns+` FROM treets WHERE id=?`), uid.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("treet %s not found", id)
	}
	if err != nil {
		return nil, apperr.Unavailable("get treet", err)
	}
	return row.toTreet()
}

func (s *sqlStore) List(ctx context.Context) ([]*Treet, error) {
	var rows []treetRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+treetColumns+` FROM treets ORDER BY created_at DESC, id ASC`); err != nil {
		return nil, apperr.Unavailable("list treets", err)
	}
	out := make([]*Treet, 0, len(rows))
	for _, row := range rows {
		t, err := row.toTreet()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *sqlStore) Update(ctx context.Context, t *Treet) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
UPDATE treets
SET name=?, category=?, date_made=?, expiration_date=?, batch_size=?, notes=?, updated_at=?
WHERE id=?`),
		t.Name, t.Category,
		database.NullMillis(t.DateMade), database.NullMillis(t.ExpirationDate),
		t.BatchSize, t.Notes, database.ToMillis(t.UpdatedAt), t.ID.String())
	if err != nil {
		return apperr.Unavailable("update treet", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("treet %s not found", t.ID)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.NotFound("treet %s not found", id)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM treets WHERE id=?`), uid.String())
	if err != nil {
		return apperr.Unavailable("delete treet", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("treet %s not found", id)
	}
	return nil
}

func (s *sqlStore) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.db.SelectContext(ctx, &out, `SELECT DISTINCT category FROM treets ORDER BY category ASC`); err != nil {
		return nil, apperr.Unavailable("list treet categories", err)
	}
	return out, nil
}

func (s *sqlStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM treets`); err != nil {
		return 0, apperr.Unavailable("count treets", err)
	}
	return n, nil
}
