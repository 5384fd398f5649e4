package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/backhouse")

	cfg, found, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.False(t, cfg.Development())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	_, _, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("APP_PORT", "")
	os.Unsetenv("APP_PORT")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=file::memory:\nDATABASE_DRIVER=sqlite\nAPP_PORT=9090\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "9090", cfg.Port)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := Config{DBDriver: "mysql", Env: "production", Timezone: "UTC"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestValidateRejectsUnknownTimezone(t *testing.T) {
	cfg := Config{DBDriver: "sqlite", Env: "production", Timezone: "Mars/Olympus"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_TIMEZONE")
}
