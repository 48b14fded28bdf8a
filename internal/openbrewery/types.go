package openbrewery

import "github.com/adamtorokhu/BriefBeer/internal/domain"

// breweryDTO mirrors the wire format of the list and detail endpoints.
type breweryDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BreweryType    string `json:"brewery_type"`
	Street         string `json:"street"`
	Address1       string `json:"address_1"`
	Address2       string `json:"address_2"`
	Address3       string `json:"address_3"`
	City           string `json:"city"`
	State          string `json:"state"`
	CountyProvince string `json:"county_province"`
	StateProvince  string `json:"state_province"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
	Longitude      string `json:"longitude"`
	Latitude       string `json:"latitude"`
	Phone          string `json:"phone"`
	WebsiteURL     string `json:"website_url"`
	UpdatedAt      string `json:"updated_at"`
	CreatedAt      string `json:"created_at"`
}

// toDomain maps a wire record to a catalog record. The remote catalog is
// authoritative for remote-origin ids, so the mapping is total: a missing
// name falls back rather than dropping the record.
func (d *breweryDTO) toDomain() domain.Brewery {
	name := d.Name
	if name == "" {
		name = "Unknown"
	}

	return domain.Brewery{
		ID:             d.ID,
		Name:           name,
		BreweryType:    d.BreweryType,
		Street:         d.Street,
		Address1:       d.Address1,
		Address2:       d.Address2,
		Address3:       d.Address3,
		City:           d.City,
		State:          d.State,
		CountyProvince: d.CountyProvince,
		StateProvince:  d.StateProvince,
		PostalCode:     d.PostalCode,
		Country:        d.Country,
		Longitude:      d.Longitude,
		Latitude:       d.Latitude,
		Phone:          d.Phone,
		WebsiteURL:     d.WebsiteURL,
		Origin:         domain.OriginRemote,
		UpdatedAt:      d.UpdatedAt,
		CreatedAt:      d.CreatedAt,
	}
}
