package catalog

import (
	"context"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
)

// SelectBrewery resolves a full detail row for the given id and
// publishes it as the selected record. The id must be known to the
// current view (unified list or favorites); unknown ids are ignored.
//
// Resolution is cache-first: a store hit publishes without a network
// call. Seed and user ids are local-only namespaces, so a store miss
// for those is a silent no-op. A remote id misses through to the
// detail endpoint and the fetched row is cached for the next select.
func (s *Session) SelectBrewery(ctx context.Context, recordID string) error {
	if !s.knowsID(recordID) {
		return nil
	}

	brewery, err := s.store.Breweries.Get(ctx, recordID)
	if err == nil {
		s.publishSelected(brewery)
		return nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if domain.OriginOf(recordID) != domain.OriginRemote {
		return nil
	}

	fetched, fetchErr := s.api.GetByID(ctx, recordID)
	if fetchErr == nil {
		if upsertErr := s.store.Breweries.Upsert(ctx, fetched); upsertErr != nil {
			s.logger.Warn("failed to cache fetched detail", "id", recordID, "error", upsertErr)
		} else {
			s.indexOne(fetched)
		}
		s.publishSelected(fetched)
		return nil
	}

	// Another path may have cached the row while the fetch was in
	// flight; check once more before giving up.
	if brewery, err = s.store.Breweries.Get(ctx, recordID); err == nil {
		s.publishSelected(brewery)
		return nil
	}

	if apperrors.Is(fetchErr, apperrors.ErrNotFound) {
		return nil
	}

	s.logger.Warn("detail fetch failed", "id", recordID, "error", fetchErr)
	s.publishNotice("Couldn't load brewery details. Check your connection and try again.", nil)
	return fetchErr
}

// ClearSelection drops the selected record from the snapshot.
func (s *Session) ClearSelection() {
	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.Selected = nil
		return snap
	})
}

// knowsID reports whether the id appears in the unified list or the
// favorites ledger of the current snapshot.
func (s *Session) knowsID(recordID string) bool {
	snap := s.cell.Get()
	for _, item := range snap.AllBreweries {
		if item.ID == recordID {
			return true
		}
	}
	for _, fav := range snap.Favorites {
		if fav.BreweryID == recordID {
			return true
		}
	}
	return false
}

func (s *Session) publishSelected(b *domain.Brewery) {
	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.Selected = b
		return snap
	})
}
