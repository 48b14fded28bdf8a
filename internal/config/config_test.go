package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BRIEFBEER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "https://api.openbrewerydb.org/v1", cfg.Catalog.BaseURL)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.Lookup.BaseURL)
	assert.True(t, filepath.IsAbs(cfg.Data.BasePath))
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BRIEFBEER_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("BRIEFBEER_ENV", "production")
	t.Setenv("BRIEFBEER_LOG_LEVEL", "debug")
	t.Setenv("BRIEFBEER_DATA_PATH", dir)
	t.Setenv("BRIEFBEER_CATALOG_URL", "http://localhost:8080/v1")
	t.Setenv("BRIEFBEER_CATALOG_PAGE_SIZE", "25")
	t.Setenv("BRIEFBEER_CATALOG_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, dir, cfg.Data.BasePath)
	assert.Equal(t, "http://localhost:8080/v1", cfg.Catalog.BaseURL)
	assert.Equal(t, 25, cfg.Catalog.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Catalog.RequestTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "BRIEFBEER_LOG_LEVEL=warn\nBRIEFBEER_SEED_PATH=\"/tmp/regions.json\"\n# comment\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	t.Setenv("BRIEFBEER_ENV_FILE", envFile)
	t.Setenv("BRIEFBEER_DATA_PATH", dir)
	// Cleared so the file value wins; t.Setenv restores the original.
	t.Setenv("BRIEFBEER_LOG_LEVEL", "")
	t.Setenv("BRIEFBEER_SEED_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "/tmp/regions.json", cfg.Seed.Path)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("BRIEFBEER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BRIEFBEER_ENV", "qa")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("BRIEFBEER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BRIEFBEER_CATALOG_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog timeout")
}
