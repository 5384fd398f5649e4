// Package dbtest opens throwaway SQLite stores for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/backhouse/internal/database"
)

// Open returns a migrated SQLite database in a temp dir, closed when t ends.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
