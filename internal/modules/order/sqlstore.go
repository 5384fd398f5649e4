package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/database"
)

// ErrDuplicateOrderNumber is returned when an order number is already taken.
var ErrDuplicateOrderNumber = &apperr.Error{Code: apperr.CodeConflict, Message: "duplicate order number"}

type orderRow struct {
	ID               string        `db:"id"`
	OrderNumber      string        `db:"order_number"`
	VendorID         string        `db:"vendor_id"`
	VendorName       string        `db:"vendor_name"`
	Status           string        `db:"status"`
	OrderDate        int64         `db:"order_date"`
	ExpectedDelivery sql.NullInt64 `db:"expected_delivery"`
	ReceivedDate     sql.NullInt64 `db:"received_date"`
	Notes            string        `db:"notes"`
	TotalItems       int           `db:"total_items"`
	CreatedAt        int64         `db:"created_at"`
	UpdatedAt        int64         `db:"updated_at"`
}

func (r orderRow) toOrder() (*Order, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	vendorID, err := uuid.Parse(r.VendorID)
	if err != nil {
		return nil, fmt.Errorf("order %s vendor id: %w", r.ID, err)
	}
	return &Order{
		ID:               id,
		OrderNumber:      r.OrderNumber,
		VendorID:         vendorID,
		VendorName:       r.VendorName,
		Status:           Status(r.Status),
		Items:            []OrderItem{},
		OrderDate:        database.FromMillis(r.OrderDate),
		ExpectedDelivery: database.TimePtr(r.ExpectedDelivery),
		ReceivedDate:     database.TimePtr(r.ReceivedDate),
		Notes:            r.Notes,
		TotalItems:       r.TotalItems,
		CreatedAt:        database.FromMillis(r.CreatedAt),
		UpdatedAt:        database.FromMillis(r.UpdatedAt),
	}, nil
}

type itemRow struct {
	OrderID      string `db:"order_id"`
	Position     int    `db:"position"`
	Name         string `db:"name"`
	Size         string `db:"size"`
	ParQty       int    `db:"par_qty"`
	CurrentStock int    `db:"current_stock"`
	OrderQty     int    `db:"order_qty"`
	Unit         string `db:"unit"`
	Notes        string `db:"notes"`
}

const orderColumns = `id,order_number,vendor_id,vendor_name,status,order_date,expected_delivery,received_date,notes,total_items,created_at,updated_at`

const itemColumns = `order_id,position,name,size,par_qty,current_stock,order_qty,unit,notes`

const nextSequence = `
INSERT INTO order_sequences (period, last_value) VALUES (?, 1)
ON CONFLICT (period) DO UPDATE SET last_value = order_sequences.last_value + 1
RETURNING last_value`

const maxNumberAttempts = 1000

type sqlStore struct {
	db  *sqlx.DB
	loc *time.Location
}

// NewSQLRepository returns a Repository backed by db. loc decides the month an order is numbered in, based on its creation time.
func NewSQLRepository(db *sqlx.DB, loc *time.Location) Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &sqlStore{db: db, loc: loc}
}

func (s *sqlStore) Create(ctx context.Context, o *Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Unavailable("begin order", err)
	}
	defer tx.Rollback()

	number := o.OrderNumber
	if number == "" {
		if number, err = s.nextNumber(ctx, tx, o.CreatedAt); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO orders (`+orderColumns+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`),
		o.ID.String(), number, o.VendorID.String(), o.VendorName, string(o.Status),
		database.ToMillis(o.OrderDate),
		database.NullMillis(o.ExpectedDelivery), database.NullMillis(o.ReceivedDate),
		o.Notes, o.TotalItems,
		database.ToMillis(o.CreatedAt), database.ToMillis(o.UpdatedAt))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("order number %s: %w", number, ErrDuplicateOrderNumber)
		}
		return apperr.Unavailable("insert order", err)
	}
	if err := insertItems(ctx, tx, o); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperr.Unavailable("commit order", err)
	}
	o.OrderNumber = number
	return nil
}

// nextNumber draws from the month's sequence until it yields a number no stored order uses.
// Numbers already taken (e.g. imported orders) are skipped, and the skipped values stay consumed.
func (s *sqlStore) nextNumber(ctx context.Context, tx *sqlx.Tx, at time.Time) (string, error) {
	date := at.In(s.loc)
	for i := 0; i < maxNumberAttempts; i++ {
		var seq int64
		if err := tx.GetContext(ctx, &seq, tx.Rebind(nextSequence), Period(date)); err != nil {
			return "", apperr.Unavailable("next order number", err)
		}
		number := FormatOrderNumber(date, seq)
		var taken int
		if err := tx.GetContext(ctx, &taken, tx.Rebind(`SELECT COUNT(*) FROM orders WHERE order_number = ?`), number); err != nil {
			return "", apperr.Unavailable("check order number", err)
		}
		if taken == 0 {
			return number, nil
		}
	}
	return "", fmt.Errorf("no free order number in %s: %w", Period(date), ErrDuplicateOrderNumber)
}

func insertItems(ctx context.Context, tx *sqlx.Tx, o *Order) error {
	for i, it := range o.Items {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO order_items (`+itemColumns+`)
VALUES (?,?,?,?,?,?,?,?,?)`),
			o.ID.String(), i, it.Name, it.Size, it.ParQty, it.CurrentStock, it.OrderQty, it.Unit, it.Notes)
		if err != nil {
			return apperr.Unavailable("insert order item", err)
		}
	}
	return nil
}

func (s *sqlStore) GetByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("order %s not found", id)
	}
	return s.getOne(ctx, `WHERE id=?`, uid.String(), id)
}

func (s *sqlStore) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.getOne(ctx, `WHERE order_number=?`, orderNumber, orderNumber)
}

func (s *sqlStore) getOne(ctx context.Context, where string, arg interface{}, label string) (*Order, error) {
	var row orderRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT `+orderColumns+` FROM orders `+where), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("order %s not found", label)
	}
	if err != nil {
		return nil, apperr.Unavailable("get order", err)
	}
	o, err := row.toOrder()
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *sqlStore) List(ctx context.Context, status Status) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []interface{}
	if status != "" {
		query += ` WHERE status=?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, order_number DESC`

	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, apperr.Unavailable("list orders", err)
	}
	orders := make([]*Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := s.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the lines of every order in one query.
func (s *sqlStore) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID.String()] = o
		ids = append(ids, o.ID.String())
	}
	query, args, err := sqlx.In(`SELECT `+itemColumns+` FROM order_items WHERE order_id IN (?) ORDER BY order_id, position`, ids)
	if err != nil {
		return apperr.Unavailable("list order items", err)
	}
	var rows []itemRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return apperr.Unavailable("list order items", err)
	}
	for _, r := range rows {
		o := byID[r.OrderID]
		o.Items = append(o.Items, OrderItem{
			Name:         r.Name,
			Size:         r.Size,
			ParQty:       r.ParQty,
			CurrentStock: r.CurrentStock,
			OrderQty:     r.OrderQty,
			Unit:         r.Unit,
			Notes:        r.Notes,
		})
	}
	return nil
}

func (s *sqlStore) Update(ctx context.Context, o *Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Unavailable("begin order update", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`
UPDATE orders
SET status=?, expected_delivery=?, received_date=?, notes=?, total_items=?, updated_at=?
WHERE id=?`),
		string(o.Status), database.NullMillis(o.ExpectedDelivery), database.NullMillis(o.ReceivedDate),
		o.Notes, o.TotalItems, database.ToMillis(o.UpdatedAt), o.ID.String())
	if err != nil {
		return apperr.Unavailable("update order", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("order %s not found", o.ID)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM order_items WHERE order_id=?`), o.ID.String()); err != nil {
		return apperr.Unavailable("replace order items", err)
	}
	if err := insertItems(ctx, tx, o); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperr.Unavailable("commit order update", err)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperr.NotFound("order %s not found", id)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM orders WHERE id=?`), uid.String())
	if err != nil {
		return apperr.Unavailable("delete order", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("order %s not found", id)
	}
	return nil
}
