// Package favorites maintains the user's favorite ledger. Entries are
// denormalized snapshots keyed by brewery id and live independently of
// the catalog rows they were taken from.
package favorites

import (
	"context"
	"log/slog"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/state"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

// Service manages the favorite ledger and publishes its latest state.
type Service struct {
	store  *store.Store
	logger *slog.Logger
	cell   *state.Cell[[]domain.FavoriteBrewery]
}

// New creates the favorites service and hydrates its published state
// from the store.
func New(ctx context.Context, s *store.Store, logger *slog.Logger) (*Service, error) {
	svc := &Service{
		store:  s,
		logger: logger,
		cell:   state.NewCell[[]domain.FavoriteBrewery](nil),
	}

	if err := svc.refresh(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// List returns the current ledger, sorted by name.
func (s *Service) List() []domain.FavoriteBrewery {
	return s.cell.Get()
}

// Watch streams ledger snapshots. A slow consumer only sees the latest
// state, intermediate versions are skipped.
func (s *Service) Watch(ctx context.Context) <-chan []domain.FavoriteBrewery {
	return s.cell.Watch(ctx)
}

// IsFavorite reports whether the given brewery id is in the ledger.
func (s *Service) IsFavorite(breweryID string) bool {
	for _, f := range s.cell.Get() {
		if f.BreweryID == breweryID {
			return true
		}
	}
	return false
}

// Add records a snapshot of the given catalog entry. Adding an entry
// that is already present replaces its snapshot.
func (s *Service) Add(ctx context.Context, item domain.ListItem) error {
	fav := domain.FavoriteOf(item)
	if err := s.store.Favorites.Upsert(ctx, &fav); err != nil {
		return err
	}

	s.logger.Debug("favorite added", "brewery_id", fav.BreweryID)
	return s.refresh(ctx)
}

// Remove deletes the snapshot matching the given entry. The whole
// snapshot identifies the row; a stale snapshot whose fields no longer
// match what is stored is still removed by id, mirroring how the
// ledger was written.
func (s *Service) Remove(ctx context.Context, item domain.ListItem) error {
	if err := s.store.Favorites.Delete(ctx, item.ID); err != nil {
		return err
	}

	s.logger.Debug("favorite removed", "brewery_id", item.ID)
	return s.refresh(ctx)
}

// Toggle adds the entry if absent and removes it if present. It
// returns whether the entry is a favorite after the call.
func (s *Service) Toggle(ctx context.Context, item domain.ListItem) (bool, error) {
	if s.IsFavorite(item.ID) {
		if err := s.Remove(ctx, item); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

// refresh re-reads the full ledger from the store and publishes it.
func (s *Service) refresh(ctx context.Context) error {
	favs, err := s.store.Favorites.All(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "read favorites")
	}

	domain.SortFavorites(favs)
	s.cell.Set(favs)
	return nil
}
