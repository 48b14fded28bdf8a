package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/seed"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

const testDataset = `{
  "regions": {
    "Budapest": {
      "breweries": [
        {"name": "Mad Scientist", "location": "Budapest", "type": "micro", "beers": ["Jam 72"]},
        {"name": "Fehér Nyúl", "location": "Budapest", "type": "brewpub"}
      ]
    },
    "Békés": {
      "breweries": [
        {"name": "Szent András Sörfőzde", "location": "Békésszentandrás", "type": "regional", "qr": "59901234"}
      ]
    }
  },
  "lists": {"starter": ["mad_scientist"]}
}`

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "seed-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_MapsRegionsAndIds(t *testing.T) {
	records, err := seed.Parse([]byte(testDataset))
	require.NoError(t, err)
	require.Len(t, records, 3)

	byID := make(map[string]domain.Brewery, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	mad, ok := byID["seed_mad_scientist"]
	require.True(t, ok)
	require.Equal(t, "Mad Scientist", mad.Name)
	require.Equal(t, "Budapest", mad.City)
	require.Equal(t, "Budapest", mad.State)
	require.Equal(t, "Budapest", mad.StateProvince)
	require.Equal(t, seed.Country, mad.Country)
	require.Equal(t, domain.OriginSeed, mad.Origin)
	require.Contains(t, mad.Notes, "Jam 72")

	szent, ok := byID["seed_szent_andras_sorfozde"]
	require.True(t, ok)
	require.Equal(t, "Békés", szent.State)
	require.Equal(t, "59901234", szent.QRCode)
}

func TestParse_Malformed(t *testing.T) {
	_, err := seed.Parse([]byte(`{"regions": [`))
	require.Error(t, err)
}

func TestLoader_LoadOnce_Idempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	path := writeDataset(t, testDataset)

	loader := seed.New(s, logger.Discard().Logger, path)
	loader.LoadOnce(ctx)
	loader.LoadOnce(ctx) // second call is a no-op

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// A fresh loader re-upserting the same dataset leaves the store
	// content identical.
	seed.New(s, logger.Discard().Logger, path).LoadOnce(ctx)

	again, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Len(t, again, 3)
}

func TestLoader_MissingDatasetIsAbsorbed(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	loader := seed.New(s, logger.Discard().Logger, filepath.Join(t.TempDir(), "absent.json"))
	loader.LoadOnce(ctx) // must not panic or error out

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestLoader_BundledDatasetParses(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	loader := seed.New(s, logger.Discard().Logger, "")
	loader.LoadOnce(ctx)

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for _, b := range all {
		require.Equal(t, domain.OriginSeed, b.Origin)
		require.Equal(t, seed.Country, b.Country)
	}
}
