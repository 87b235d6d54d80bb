package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rajmahal-backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/snapshots.db", cfg.SnapshotDBPath)
	assert.Empty(t, cfg.SheetsSyncURL)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: \"9000\"\nsheets_sync_url: https://script.example.com/from-file\n",
	), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SHEETS_SYNC_URL", "https://script.example.com/from-env")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://script.example.com/from-env", cfg.SheetsSyncURL)
}

func TestInvalidSyncURLRejected(t *testing.T) {
	t.Setenv("SHEETS_SYNC_URL", "not-a-url")

	_, err := config.Load()
	assert.Error(t, err)
}
