package catalog

import (
	"context"
	"time"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/id"
)

// RecordInput carries the editable fields of a user-authored record.
// Fields outside this set (coordinates, qr code, image) are managed by
// other paths and survive edits untouched.
type RecordInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	BreweryType string `json:"brewery_type" validate:"omitempty,max=50"`
	Street      string `json:"street" validate:"omitempty,max=200"`
	City        string `json:"city" validate:"omitempty,max=100"`
	State       string `json:"state" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" validate:"omitempty,max=20"`
	Country     string `json:"country" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
	WebsiteURL  string `json:"website_url" validate:"omitempty,url"`
	Notes       string `json:"notes" validate:"omitempty,max=4000"`
	QRCode      string `json:"qr_code" validate:"omitempty,max=200"`
}

// CreateBrewery adds a user-authored record. The id is generated in
// the user namespace from the creation timestamp, which cannot collide
// with seed or remote ids.
func (s *Session) CreateBrewery(ctx context.Context, input RecordInput) (*domain.Brewery, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	brewery := &domain.Brewery{
		ID:          id.NewUserRecordID(domain.UserIDPrefix, now),
		Name:        input.Name,
		BreweryType: input.BreweryType,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		Phone:       input.Phone,
		WebsiteURL:  input.WebsiteURL,
		Notes:       input.Notes,
		QRCode:      input.QRCode,
		Origin:      domain.OriginUser,
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
	}

	if err := s.store.Breweries.Upsert(ctx, brewery); err != nil {
		return nil, err
	}
	s.indexOne(brewery)

	s.logger.Debug("user record created", "id", brewery.ID)
	return brewery, s.refreshCatalog(ctx, s.cell.Get().IsLoading)
}

// UpdateBrewery applies the editable fields to an existing record. An
// id that does not resolve to a stored row is a silent no-op. Fields
// outside the editable set keep their stored values, and if the record
// is favorited the ledger snapshot is brought in line with the new
// display fields.
func (s *Session) UpdateBrewery(ctx context.Context, recordID string, input RecordInput) error {
	existing, err := s.store.Breweries.Get(ctx, recordID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.validator.Validate(input); err != nil {
		return err
	}

	updated := *existing
	updated.Name = input.Name
	updated.BreweryType = input.BreweryType
	updated.Street = input.Street
	updated.City = input.City
	updated.State = input.State
	updated.PostalCode = input.PostalCode
	updated.Country = input.Country
	updated.Phone = input.Phone
	updated.WebsiteURL = input.WebsiteURL
	updated.Notes = input.Notes
	if input.QRCode != "" {
		updated.QRCode = input.QRCode
	}
	updated.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.store.Breweries.Upsert(ctx, &updated); err != nil {
		return err
	}
	s.indexOne(&updated)

	if s.favorites.IsFavorite(recordID) {
		if err := s.favorites.Add(ctx, updated.ListItem()); err != nil {
			s.logger.Warn("favorite snapshot update failed", "id", recordID, "error", err)
		}
	}

	s.cell.Update(func(snap Snapshot) Snapshot {
		if snap.Selected != nil && snap.Selected.ID == recordID {
			snap.Selected = &updated
		}
		return snap
	})

	s.logger.Debug("record updated", "id", recordID)
	return s.refreshCatalog(ctx, s.cell.Get().IsLoading)
}

// DeleteBrewery removes a record from the store, the unified view, the
// favorites ledger, and the selection. The data layer permits deleting
// any id; restricting deletion to user-authored records is the
// presentation layer's call.
func (s *Session) DeleteBrewery(ctx context.Context, recordID string) error {
	if err := s.store.Breweries.Delete(ctx, recordID); err != nil {
		return err
	}
	s.unindexOne(recordID)

	if s.favorites.IsFavorite(recordID) {
		if err := s.favorites.Remove(ctx, domain.ListItem{ID: recordID}); err != nil {
			s.logger.Warn("favorite removal failed", "id", recordID, "error", err)
		}
	}

	s.cell.Update(func(snap Snapshot) Snapshot {
		if snap.Selected != nil && snap.Selected.ID == recordID {
			snap.Selected = nil
		}
		return snap
	})

	s.logger.Debug("record deleted", "id", recordID)
	return s.refreshCatalog(ctx, s.cell.Get().IsLoading)
}

// ToggleFavorite flips the favorite state of a list entry and
// republishes the ledger. It returns whether the entry is a favorite
// after the call.
func (s *Session) ToggleFavorite(ctx context.Context, item domain.ListItem) (bool, error) {
	on, err := s.favorites.Toggle(ctx, item)
	if err != nil {
		return on, err
	}

	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.Favorites = s.favorites.List()
		return snap
	})
	return on, nil
}
