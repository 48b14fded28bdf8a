package search

import "github.com/adamtorokhu/BriefBeer/internal/domain"

// Document is the indexed projection of a catalog record.
type Document struct {
	ID          string
	Name        string
	BreweryType string
	City        string
	State       string
	Country     string
	Notes       string
	Origin      string
}

// DocumentFor builds the index projection of a brewery.
func DocumentFor(b *domain.Brewery) *Document {
	return &Document{
		ID:          b.ID,
		Name:        b.Name,
		BreweryType: b.BreweryType,
		City:        b.City,
		State:       b.State,
		Country:     b.Country,
		Notes:       b.Notes,
		Origin:      string(b.Origin),
	}
}

// ToMap converts the document to a map so field names match the
// mapping (lowercase).
func (d *Document) ToMap() map[string]any {
	return map[string]any{
		"id":           d.ID,
		"name":         d.Name,
		"brewery_type": d.BreweryType,
		"city":         d.City,
		"state":        d.State,
		"country":      d.Country,
		"notes":        d.Notes,
		"origin":       d.Origin,
	}
}
