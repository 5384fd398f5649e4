package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/backhouse/internal/apperr"
	"github.com/georgemunganga/backhouse/internal/database/dbtest"
)

func newOrder(date time.Time, items ...OrderItem) *Order {
	return &Order{
		ID:         uuid.New(),
		VendorID:   uuid.New(),
		VendorName: "Sysco",
		Status:     StatusDraft,
		Items:      items,
		OrderDate:  date,
		TotalItems: TotalItems(items),
		CreatedAt:  date,
		UpdatedAt:  date,
	}
}

func TestSQLRepositoryNumbersSequentiallyPerMonth(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t), time.UTC)

	march := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	var numbers []string
	for _, d := range []time.Time{march, march, april, march} {
		o := newOrder(d, OrderItem{Name: "Eggs", OrderQty: 2})
		require.NoError(t, repo.Create(ctx, o))
		numbers = append(numbers, o.OrderNumber)
	}
	assert.Equal(t, []string{"ORD-202603-0001", "ORD-202603-0002", "ORD-202604-0001", "ORD-202603-0003"}, numbers)
}

func TestSQLRepositoryPeriodUsesStoreTimezone(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	repo := NewSQLRepository(dbtest.Open(t), loc)

	// 2026-04-01 03:00 UTC is still March 31 in PDT.
	o := newOrder(time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC), OrderItem{Name: "Eggs", OrderQty: 1})
	require.NoError(t, repo.Create(context.Background(), o))
	assert.Equal(t, "ORD-202603-0001", o.OrderNumber)
}

func TestSQLRepositoryRejectsDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t), time.UTC)
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	first.OrderNumber = "ORD-202603-0007"
	require.NoError(t, repo.Create(ctx, first))

	second := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	second.OrderNumber = "ORD-202603-0007"
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateOrderNumber)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// The failed insert leaves the sequence usable.
	third := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, "ORD-202603-0001", third.OrderNumber)
}

func TestSQLRepositorySkipsNumbersAlreadyStored(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t), time.UTC)
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	imported := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	imported.OrderNumber = "ORD-202603-0001"
	require.NoError(t, repo.Create(ctx, imported))

	var numbers []string
	for i := 0; i < 3; i++ {
		o := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
		require.NoError(t, repo.Create(ctx, o))
		numbers = append(numbers, o.OrderNumber)
	}
	assert.Equal(t, []string{"ORD-202603-0002", "ORD-202603-0003", "ORD-202603-0004"}, numbers)
}

func TestSQLRepositoryLeavesNumberUnsetOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t), time.UTC)
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	require.NoError(t, repo.Create(ctx, first))

	// Same id: the insert fails after a number was drawn.
	dup := newOrder(date, OrderItem{Name: "Eggs", OrderQty: 1})
	dup.ID = first.ID
	require.Error(t, repo.Create(ctx, dup))
	assert.Empty(t, dup.OrderNumber)
}

func TestSQLRepositoryNumbersByCreationMonth(t *testing.T) {
	repo := NewSQLRepository(dbtest.Open(t), time.UTC)

	o := newOrder(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), OrderItem{Name: "Eggs", OrderQty: 1})
	o.OrderDate = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), o))
	assert.Equal(t, "ORD-202604-0001", o.OrderNumber)
}

func TestSQLRepositoryRoundTripAndCascade(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewSQLRepository(db, time.UTC)
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	o := newOrder(date,
		OrderItem{Name: "Sourdough", Size: "case", ParQty: 6, CurrentStock: 2, OrderQty: 4, Unit: "case"},
		OrderItem{Name: "Eggs", OrderQty: 2, Notes: "large"},
	)
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, 6, got.TotalItems)

	got.Items = got.Items[1:]
	got.TotalItems = TotalItems(got.Items)
	got.Status = StatusSubmitted
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx, StatusSubmitted)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 1)

	none, err := repo.List(ctx, StatusDraft)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.Delete(ctx, o.ID.String()))
	var lines int
	require.NoError(t, db.Get(&lines, `SELECT COUNT(*) FROM order_items`))
	assert.Zero(t, lines)
	_, err = repo.GetByID(ctx, o.ID.String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
