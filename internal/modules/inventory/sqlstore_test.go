package inventory

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

func newItem(name, category string, stock int) *Item {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	return &Item{ID: uuid.New(), Name: name, Category: category, CurrentStock: stock, Unit: DefaultUnit, CreatedAt: now, UpdatedAt: now}
}

func TestSQLRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t))

	ordered := time.Date(2026, 10, 1, 15, 30, 0, 0, time.UTC)
	kale := newItem("Kale", CategoryJuicingProduce, 2)
	kale.LastOrdered = &ordered
	bread := newItem("Sourdough", CategoryBread, 0)
	require.NoError(t, repo.Create(ctx, kale))
	require.NoError(t, repo.Create(ctx, bread))

	got, err := repo.GetByID(ctx, kale.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Kale", got.Name)
	require.NotNil(t, got.LastOrdered)
	assert.True(t, ordered.Equal(*got.LastOrdered))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sourdough", list[0].Name)

	got.CurrentStock = 9
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, kale.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 9, again.CurrentStock)

	require.NoError(t, repo.Delete(ctx, bread.ID.String()))
	_, err = repo.GetByID(ctx, bread.ID.String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, bread.ID.String()), apperr.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLRepositoryNotFoundForMalformedID(t *testing.T) {
	repo := NewSQLRepository(dbtest.Open(t))
	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSQLRepositoryUpdateManyRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(dbtest.Open(t))
	kale := newItem("Kale", CategoryJuicingProduce, 2)
	require.NoError(t, repo.CreateMany(ctx, []*Item{kale}))

	kale.CurrentStock = 20
	ghost := newItem("Ghost", CategoryOther, 1)
	err := repo.UpdateMany(ctx, []*Item{kale, ghost})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := repo.GetByID(ctx, kale.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStock)
}
