package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAppliesMigrationsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "backhouse.db")

	db, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)

	var tables int
	require.NoError(t, db.Get(&tables,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('inventory_items','treets','vendors','orders','order_items','order_sequences')`))
	assert.Equal(t, 6, tables)
	require.NoError(t, db.Close())

	db, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	var recorded int
	require.NoError(t, db.Get(&recorded, `SELECT COUNT(*) FROM schema_migrations`))
	assert.Equal(t, 1, recorded)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestApplyMigrationsSkipsDownSection(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	extra := fstest.MapFS{
		"extra/0002_notes.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE notes (id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE inventory_items;\n")},
	}
	require.NoError(t, applyMigrations(ctx, db, extra, "extra"))

	var tables int
	require.NoError(t, db.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('notes','inventory_items')`))
	assert.Equal(t, 2, tables)
}

func TestMillisRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.FixedZone("EST", -5*3600))
	assert.True(t, at.Equal(FromMillis(ToMillis(at))))

	assert.False(t, NullMillis(nil).Valid)
	assert.Nil(t, TimePtr(NullMillis(nil)))
	got := TimePtr(NullMillis(&at))
	require.NotNil(t, got)
	assert.True(t, at.Equal(*got))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: orders.order_number (2067)")))
	assert.False(t, IsUniqueViolation(errors.New("no such table")))
	assert.False(t, IsUniqueViolation(nil))
}
