package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func TestEntity_Upsert_InsertAndGet(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	b := &domain.Brewery{
		ID:          "b1",
		Name:        "Stone Brewing",
		BreweryType: "micro",
		City:        "Escondido",
		Origin:      domain.OriginRemote,
	}

	err := s.Breweries.Upsert(context.Background(), b)
	require.NoError(t, err)

	got, err := s.Breweries.Get(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, b.Name, got.Name)
	require.Equal(t, b.City, got.City)
}

func TestEntity_Upsert_ReplacesWholeRow(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	first := &domain.Brewery{
		ID:     "b1",
		Name:   "Old Name",
		Phone:  "123456",
		Origin: domain.OriginRemote,
	}
	require.NoError(t, s.Breweries.Upsert(ctx, first))

	// Second upsert carries no phone; the row is replaced, not patched.
	second := &domain.Brewery{
		ID:     "b1",
		Name:   "New Name",
		Origin: domain.OriginRemote,
	}
	require.NoError(t, s.Breweries.Upsert(ctx, second))

	got, err := s.Breweries.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "New Name", got.Name)
	require.Empty(t, got.Phone)
}

func TestEntity_Get_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.Breweries.Get(context.Background(), "missing")
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEntity_UpsertMany_AllCommitted(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	batch := []domain.Brewery{
		{ID: "b1", Name: "Alpha", Origin: domain.OriginRemote},
		{ID: "b2", Name: "Beta", Origin: domain.OriginRemote},
		{ID: "b3", Name: "Gamma", Origin: domain.OriginRemote},
	}
	require.NoError(t, s.Breweries.UpsertMany(ctx, batch))

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestEntity_UpsertMany_EachRowUnderOwnKey(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// Batch writes share one transaction, which holds every key until
	// commit. Each row and index entry must land under its own key even
	// when many keys are built back to back.
	batch := make([]domain.Brewery, 0, 40)
	want := make(map[string]string, 40)
	for i := range 40 {
		id := fmt.Sprintf("b%02d", i)
		name := fmt.Sprintf("Brewery %02d", i)
		batch = append(batch, domain.Brewery{ID: id, Name: name, Origin: domain.OriginRemote})
		want[id] = name
	}
	require.NoError(t, s.Breweries.UpsertMany(ctx, batch))

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(want))

	for id, name := range want {
		got, err := s.Breweries.Get(ctx, id)
		require.NoError(t, err, "row %s", id)
		require.Equal(t, name, got.Name)
	}

	remotes, err := s.Breweries.ListByIndex(ctx, "origin", string(domain.OriginRemote))
	require.NoError(t, err)
	require.Len(t, remotes, len(want))
}

func TestEntity_UpsertMany_Empty(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, s.Breweries.UpsertMany(context.Background(), nil))
}

func TestEntity_Delete_Idempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	b := &domain.Brewery{ID: "b1", Name: "Alpha", Origin: domain.OriginRemote}
	require.NoError(t, s.Breweries.Upsert(ctx, b))

	require.NoError(t, s.Breweries.Delete(ctx, "b1"))

	_, err := s.Breweries.Get(ctx, "b1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, s.Breweries.Delete(ctx, "b1"))
}

func TestEntity_All_SkipsIndexKeys(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	batch := []domain.Brewery{
		{ID: "b1", Name: "Alpha", Origin: domain.OriginRemote},
		{ID: domain.UserIDPrefix + "1700000000000", Name: "Mine", Origin: domain.OriginUser},
	}
	require.NoError(t, s.Breweries.UpsertMany(ctx, batch))

	all, err := s.Breweries.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestEntity_ListByIndex_Origin(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	batch := []domain.Brewery{
		{ID: "b1", Name: "Alpha", Origin: domain.OriginRemote},
		{ID: domain.SeedIDPrefix + "alpha", Name: "Seeded", Origin: domain.OriginSeed},
		{ID: domain.UserIDPrefix + "1700000000000", Name: "Mine", Origin: domain.OriginUser},
		{ID: domain.UserIDPrefix + "1700000000001", Name: "Mine Too", Origin: domain.OriginUser},
	}
	require.NoError(t, s.Breweries.UpsertMany(ctx, batch))

	users, err := s.Breweries.ListByIndex(ctx, "origin", string(domain.OriginUser))
	require.NoError(t, err)
	require.Len(t, users, 2)

	seeds, err := s.Breweries.ListByIndex(ctx, "origin", string(domain.OriginSeed))
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	require.Equal(t, "Seeded", seeds[0].Name)
}

func TestEntity_ListByIndex_UpdatedOriginMoves(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	b := &domain.Brewery{ID: "b1", Name: "Alpha", Origin: domain.OriginRemote}
	require.NoError(t, s.Breweries.Upsert(ctx, b))

	// Re-upsert under a different indexed value; the old index entry
	// must be cleaned up.
	b.Origin = domain.OriginSeed
	require.NoError(t, s.Breweries.Upsert(ctx, b))

	remotes, err := s.Breweries.ListByIndex(ctx, "origin", string(domain.OriginRemote))
	require.NoError(t, err)
	require.Empty(t, remotes)

	seeds, err := s.Breweries.ListByIndex(ctx, "origin", string(domain.OriginSeed))
	require.NoError(t, err)
	require.Len(t, seeds, 1)
}

func TestStore_FavoritesIndependentOfBreweries(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	b := &domain.Brewery{ID: "b1", Name: "Alpha", City: "Dublin", Origin: domain.OriginRemote}
	require.NoError(t, s.Breweries.Upsert(ctx, b))

	fav := domain.FavoriteOf(b.ListItem())
	require.NoError(t, s.Favorites.Upsert(ctx, &fav))

	// Evict the catalog row; the favorite snapshot must survive.
	require.NoError(t, s.Breweries.Delete(ctx, "b1"))

	got, err := s.Favorites.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "Alpha", got.Name)
	require.Equal(t, "Dublin", got.City)
}
