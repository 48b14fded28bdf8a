package catalog

import (
	"strings"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

// SetQuery updates the free-text filter and recomputes the filtered
// view synchronously.
func (s *Session) SetQuery(query string) {
	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.Query = query
		snap.Filtered = applyFilters(snap.AllBreweries, query, snap.TypeFilter)
		return snap
	})
}

// SetTypeFilter updates the categorical filter. An empty value clears
// it.
func (s *Session) SetTypeFilter(breweryType string) {
	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.TypeFilter = breweryType
		snap.Filtered = applyFilters(snap.AllBreweries, snap.Query, breweryType)
		return snap
	})
}

// applyFilters derives the filtered view. The query matches when empty
// or contained case-insensitively in the name, country, or city. The
// type filter requires an exact case-insensitive type match. Both
// predicates are ANDed. With neither active the unified list is
// returned as-is, no scan.
func applyFilters(items []domain.ListItem, query, typeFilter string) []domain.ListItem {
	q := strings.ToLower(strings.TrimSpace(query))
	tf := strings.ToLower(strings.TrimSpace(typeFilter))

	if q == "" && tf == "" {
		return items
	}

	filtered := make([]domain.ListItem, 0, len(items))
	for _, item := range items {
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		if tf != "" && strings.ToLower(item.BreweryType) != tf {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesQuery(item domain.ListItem, q string) bool {
	return strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.Country), q) ||
		strings.Contains(strings.ToLower(item.City), q)
}
