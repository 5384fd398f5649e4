package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/database"
)

type itemRow struct {
	ID           string        `db:"id"`
	Name         string        `db:"name"`
	Code         string        `db:"code"`
	Category     string        `db:"category"`
	Notes        string        `db:"notes"`
	WeekdayPar   int           `db:"weekday_par"`
	WeekendPar   int           `db:"weekend_par"`
	CurrentStock int           `db:"current_stock"`
	Unit         string        `db:"unit"`
	Supplier     string        `db:"supplier"`
	LastOrdered  sql.NullInt64 `db:"last_ordered"`
	CreatedAt    int64         `db:"created_at"`
	UpdatedAt    int64         `db:"updated_at"`
}

func (r itemRow) toItem() (*Item, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	return &Item{
		ID:           id,
		Name:         r.Name,
		Code:         r.Code,
		Category:     r.Category,
		Notes:        r.Notes,
		WeekdayPar:   r.WeekdayPar,
		WeekendPar:   r.WeekendPar,
		CurrentStock: r.CurrentStock,
		Unit:         r.Unit,
		Supplier:     r.Supplier,
		LastOrdered:  database.TimePtr(r.LastOrdered),
		CreatedAt:    database.FromMillis(r.CreatedAt),
		UpdatedAt:    database.FromMillis(r.UpdatedAt),
	}, nil
}

const itemColumns = `id,name,code,category,notes,weekday_par,weekend_par,current_stock,unit,supplier,last_ordered,created_at,updated_at`

type sqlStore struct{ db *sqlx.DB }

// NewSQLRepository returns a Repository backed by db.
func NewSQLRepository(db *sqlx.DB) Repository { return &sqlStore{db: db} }

func (s *sqlStore) Create(ctx context.Context, item *Item) error {
	if err := insertItem(ctx, s.db, item); err != nil {
		return apperr.Unavailable("insert inventory item", err)
	}
	return nil
}

func (s *sqlStore) CreateMany(ctx context.Context, items []*Item) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Unavailable("begin inventory batch", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		if err := insertItem(ctx, tx, item); err != nil {
			return apperr.Unavailable("insert inventory item", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperr.Unavailable("commit inventory batch", err)
	}
	return nil
}

func insertItem(ctx context.Context, ex sqlx.ExtContext, item *Item) error {
	_, err := ex.ExecContext(ctx, ex.Rebind(`
INSERT INTO inventory_items (`+itemColumns+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`),
		item.ID.String(), item.Name, item.Code, item.Category, item.Notes,
		item.WeekdayPar, item.WeekendPar, item.CurrentStock, item.Unit, item.Supplier,
		database.NullMillis(item.LastOrdered),
		database.ToMillis(item.CreatedAt), database.ToMillis(item.UpdatedAt))
	return err
}

func (s *sqlStore) GetByID(ctx context.Context, id string) (*Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("inventory item %s not found", id)
	}
	var row itemRow
	err = s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT `+itemColumns+` FROM inventory_items WHERE id=?`), uid.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("inventory item %s not found", id)
	}
	if err != nil {
		return nil, apperr.Unavailable("get inventory item", err)
	}
	return row.toItem()
}

func (s *sqlStore) List(ctx context.Context) ([]*Item, error) {
	var rows []itemRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+itemColumns+` FROM inventory_items ORDER BY category ASC, name ASC`); err != nil {
		return nil, apperr.Unavailable("list inventory", err)
	}
	items := make([]*Item, 0, len(rows))
	for _, row := range rows {
		item, err := row.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *sqlStore) Update(ctx context.Context, item *Item) error {
	n, err := updateItem(ctx, s.db, item)
	if err != nil {
		return apperr.Unavailable("update inventory item", err)
	}
	if n == 0 {
		return apperr.NotFound("inventory item %s not found", item.ID)
	}
	return nil
}

func (s *sqlStore) UpdateMany(ctx context.Context, items []*Item) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Unavailable("begin inventory batch", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		n, err := updateItem(ctx, tx, item)
		if err != nil {
			return apperr.Unavailable("update inventory item", err)
		}
		if n == 0 {
			return apperr.NotFound("inventory item %s not found", item.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperr.Unavailable("commit inventory batch", err)
	}
	return nil
}

func updateItem(ctx context.Context, ex sqlx.ExtContext, item *Item) (int64, error) {
	res, err := ex.ExecContext(ctx, ex.Rebind(`
UPDATE inventory_items
SET name=?, code=?, category=?, notes=?, weekday_par=?, weekend_par=?, current_stock=?,
    unit=?, supplier=?, last_ordered=?, updated_at=?
WHERE id=?`),
		item.Name, item.Code, item.Category, item.Notes,
		item.WeekdayPar, item.WeekendPar, item.CurrentStock,
		item.Unit, item.Supplier, database.NullMillis(item.LastOrdered),
		database.ToMillis(item.UpdatedAt), item.ID.String())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *sqlStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.NotFound("inventory item %s not found", id)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM inventory_items WHERE id=?`), uid.String())
	if err != nil {
		return apperr.Unavailable("delete inventory item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("inventory item %s not found", id)
	}
	return nil
}

func (s *sqlStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM inventory_items`); err != nil {
		return 0, apperr.Unavailable("count inventory", err)
	}
	return n, nil
}
