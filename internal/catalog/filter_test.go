package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

func setupFiltered(t *testing.T) *fixture {
	t.Helper()

	api := &fakeAPI{
		pages: [][]domain.Brewery{{
			{ID: "r1", Name: "Stone", BreweryType: "micro", City: "Escondido", Country: "United States", Origin: domain.OriginRemote},
			{ID: "r2", Name: "Guinness", BreweryType: "large", City: "Dublin", Country: "Ireland", Origin: domain.OriginRemote},
		}},
	}
	fx := setup(t, api, nil)
	require.NoError(t, fx.session.LoadBreweries(context.Background()))
	return fx
}

func TestSetQuery_MatchesNameSubstring(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetQuery("sto")

	snap := fx.session.Snapshot()
	require.Len(t, snap.Filtered, 1)
	assert.Equal(t, "Stone", snap.Filtered[0].Name)
}

func TestSetQuery_MatchesCityAndCountry(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetQuery("dubl")
	require.Len(t, fx.session.Snapshot().Filtered, 1)
	assert.Equal(t, "Guinness", fx.session.Snapshot().Filtered[0].Name)

	fx.session.SetQuery("IRELAND")
	require.Len(t, fx.session.Snapshot().Filtered, 1)
	assert.Equal(t, "Guinness", fx.session.Snapshot().Filtered[0].Name)
}

func TestSetTypeFilter_ExactMatch(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetTypeFilter("large")

	snap := fx.session.Snapshot()
	require.Len(t, snap.Filtered, 1)
	assert.Equal(t, "Guinness", snap.Filtered[0].Name)

	// Exact match, not substring.
	fx.session.SetTypeFilter("larg")
	assert.Empty(t, fx.session.Snapshot().Filtered)
}

func TestFilters_AreAnded(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetQuery("ireland")
	fx.session.SetTypeFilter("micro")

	assert.Empty(t, fx.session.Snapshot().Filtered)
}

func TestFilters_BothEmptyReturnsAll(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetQuery("sto")
	fx.session.SetQuery("")
	fx.session.SetTypeFilter("")

	snap := fx.session.Snapshot()
	assert.Equal(t, []string{"r2", "r1"}, ids(snap.Filtered))
	assert.Equal(t, ids(snap.AllBreweries), ids(snap.Filtered))
}

func TestSetQuery_TrimsAndLowercases(t *testing.T) {
	fx := setupFiltered(t)

	fx.session.SetQuery("  STONE  ")

	snap := fx.session.Snapshot()
	require.Len(t, snap.Filtered, 1)
	assert.Equal(t, "Stone", snap.Filtered[0].Name)
}

func TestFilter_RecomputedOnCatalogChange(t *testing.T) {
	fx := setupFiltered(t)
	ctx := context.Background()

	fx.session.SetQuery("stone")
	require.Len(t, fx.session.Snapshot().Filtered, 1)

	_, err := fx.session.CreateBrewery(ctx, mineInput("Stone Fruit Works", "Budapest"))
	require.NoError(t, err)

	assert.Len(t, fx.session.Snapshot().Filtered, 2)
}
