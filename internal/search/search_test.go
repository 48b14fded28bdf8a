package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	"github.com/adamtorokhu/BriefBeer/internal/search"
)

func setupIndex(t *testing.T) *search.Index {
	t.Helper()

	idx, err := search.NewIndex(search.Options{DataPath: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func indexFixtures(t *testing.T, idx *search.Index) {
	t.Helper()

	breweries := []domain.Brewery{
		{ID: "r1", Name: "Stone Brewing", BreweryType: "regional", City: "Escondido", State: "California", Country: "United States", Origin: domain.OriginRemote},
		{ID: "r2", Name: "Guinness Open Gate", BreweryType: "large", City: "Dublin", Country: "Ireland", Origin: domain.OriginRemote},
		{ID: "seed_mad_scientist", Name: "Mad Scientist", BreweryType: "micro", City: "Budapest", Country: "Hungary", Notes: "Beers: Liquid Cocaine, Jam 72", Origin: domain.OriginSeed},
	}

	docs := make([]*search.Document, 0, len(breweries))
	for i := range breweries {
		docs = append(docs, search.DocumentFor(&breweries[i]))
	}
	require.NoError(t, idx.IndexDocuments(docs))
}

func TestSearch_ByName(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	result, err := idx.Search(context.Background(), search.Params{Query: "stone", Limit: 10})
	require.NoError(t, err)

	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "r1", result.Hits[0].ID)
	assert.Equal(t, "Stone Brewing", result.Hits[0].Name)
}

func TestSearch_ByCity(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	result, err := idx.Search(context.Background(), search.Params{Query: "budapest", Limit: 10})
	require.NoError(t, err)

	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "seed_mad_scientist", result.Hits[0].ID)
}

func TestSearch_TypeFilter(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	result, err := idx.Search(context.Background(), search.Params{BreweryType: "micro", Limit: 10})
	require.NoError(t, err)

	require.Len(t, result.Hits, 1)
	assert.Equal(t, "seed_mad_scientist", result.Hits[0].ID)
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	result, err := idx.Search(context.Background(), search.Params{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), result.Total)
}

func TestDeleteDocument(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	require.NoError(t, idx.DeleteDocument("r1"))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestRebuild_EmptiesIndex(t *testing.T) {
	idx := setupIndex(t)
	indexFixtures(t, idx)

	require.NoError(t, idx.Rebuild())

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}
