package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

func TestOriginOf(t *testing.T) {
	tests := []struct {
		id   string
		want domain.Origin
	}{
		{"seed_mad_scientist", domain.OriginSeed},
		{"user_added_1700000000000", domain.OriginUser},
		{"b54b6dbe-3bfd-4b94-a1bd-47f0cfc25e27", domain.OriginRemote},
		{"stone-brewing-escondido", domain.OriginRemote},
		{"", domain.OriginRemote},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.OriginOf(tt.id), tt.id)
	}
}

func TestListItemRoundTrip(t *testing.T) {
	b := domain.Brewery{
		ID:          "r1",
		Name:        "Stone Brewing",
		BreweryType: "regional",
		City:        "Escondido",
		State:       "California",
		Country:     "United States",
		Phone:       "555-1234",
	}

	item := b.ListItem()
	fav := domain.FavoriteOf(item)

	assert.Equal(t, "r1", fav.BreweryID)
	assert.Equal(t, "Stone Brewing", fav.Name)
	assert.Equal(t, item, fav.ListItem())
}

func TestSortBreweries_CaseInsensitiveWithIDTiebreak(t *testing.T) {
	breweries := []domain.Brewery{
		{ID: "c", Name: "zeta"},
		{ID: "b", Name: "Ale House"},
		{ID: "a", Name: "ale house"},
	}

	domain.SortBreweries(breweries)

	assert.Equal(t, "a", breweries[0].ID)
	assert.Equal(t, "b", breweries[1].ID)
	assert.Equal(t, "c", breweries[2].ID)
}
