// Package domain contains the core entities for the BriefBeer catalog.
package domain

import "strings"

// Origin classifies where a catalog record came from.
type Origin string

// Record origins. The id namespace is the generation strategy for
// uniqueness; Origin is the field code dispatches on.
const (
	OriginRemote Origin = "remote"
	OriginSeed   Origin = "seed"
	OriginUser   Origin = "user"
)

// Id namespace prefixes. Seed and user ids never collide with remote ids
// because the remote catalog does not issue ids with these prefixes.
const (
	SeedIDPrefix = "seed_"
	UserIDPrefix = "user_added_"
)

// OriginOf derives the origin of a record id from its namespace prefix.
func OriginOf(id string) Origin {
	switch {
	case strings.HasPrefix(id, SeedIDPrefix):
		return OriginSeed
	case strings.HasPrefix(id, UserIDPrefix):
		return OriginUser
	default:
		return OriginRemote
	}
}

// Brewery is a catalog record. One row per record id, whole-row replace
// on upsert. Coordinates and timestamps stay strings because that is how
// the remote wire format carries them.
type Brewery struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BreweryType    string `json:"brewery_type,omitempty"`
	Street         string `json:"street,omitempty"`
	Address1       string `json:"address_1,omitempty"`
	Address2       string `json:"address_2,omitempty"`
	Address3       string `json:"address_3,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	CountyProvince string `json:"county_province,omitempty"`
	StateProvince  string `json:"state_province,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	Country        string `json:"country,omitempty"`
	Longitude      string `json:"longitude,omitempty"`
	Latitude       string `json:"latitude,omitempty"`
	Phone          string `json:"phone,omitempty"`
	WebsiteURL     string `json:"website_url,omitempty"`
	Notes          string `json:"notes,omitempty"`
	QRCode         string `json:"qr_code,omitempty"`
	ImagePath      string `json:"image_path,omitempty"`
	Origin         Origin `json:"origin"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// ListItem is the display projection shown in catalog lists.
type ListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BreweryType string `json:"brewery_type"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// ListItem returns the display projection of a brewery.
func (b *Brewery) ListItem() ListItem {
	return ListItem{
		ID:          b.ID,
		Name:        b.Name,
		BreweryType: b.BreweryType,
		City:        b.City,
		State:       b.State,
		Country:     b.Country,
	}
}

// FavoriteBrewery is the denormalized snapshot of a brewery's display
// fields taken at favorite-time. Its existence is independent of whether
// the catalog row still exists.
type FavoriteBrewery struct {
	BreweryID   string `json:"brewery_id"`
	Name        string `json:"name"`
	BreweryType string `json:"brewery_type"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// FavoriteOf captures the favorite snapshot for a list item.
func FavoriteOf(item ListItem) FavoriteBrewery {
	return FavoriteBrewery{
		BreweryID:   item.ID,
		Name:        item.Name,
		BreweryType: item.BreweryType,
		City:        item.City,
		State:       item.State,
		Country:     item.Country,
	}
}

// ListItem returns the display projection of a favorite snapshot.
func (f *FavoriteBrewery) ListItem() ListItem {
	return ListItem{
		ID:          f.BreweryID,
		Name:        f.Name,
		BreweryType: f.BreweryType,
		City:        f.City,
		State:       f.State,
		Country:     f.Country,
	}
}
