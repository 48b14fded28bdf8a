package domain

import (
	"sort"
	"strings"
)

// SortBreweries orders breweries case-insensitively by name, with the id
// as tiebreak so the order is stable across re-derivations.
func SortBreweries(breweries []Brewery) {
	sort.Slice(breweries, func(i, j int) bool {
		ni := strings.ToLower(breweries[i].Name)
		nj := strings.ToLower(breweries[j].Name)
		if ni != nj {
			return ni < nj
		}
		return breweries[i].ID < breweries[j].ID
	})
}

// SortListItems orders list items the same way SortBreweries orders rows.
func SortListItems(items []ListItem) {
	sort.Slice(items, func(i, j int) bool {
		ni := strings.ToLower(items[i].Name)
		nj := strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].ID < items[j].ID
	})
}

// SortFavorites orders ledger entries the same way catalog rows are
// ordered.
func SortFavorites(favs []FavoriteBrewery) {
	sort.Slice(favs, func(i, j int) bool {
		ni := strings.ToLower(favs[i].Name)
		nj := strings.ToLower(favs[j].Name)
		if ni != nj {
			return ni < nj
		}
		return favs[i].BreweryID < favs[j].BreweryID
	})
}
