package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

// LoadBreweries runs one reconciliation pass: publish the cached
// catalog immediately, fetch the remote catalog page by page, commit
// the accumulated pages as one batch, then re-derive the unified view
// from the store. Remote failures fall back to the cached view
// silently; the next pass retries from page 1.
//
// A pass already in flight absorbs concurrent calls: the second caller
// returns immediately and observes the running pass through the
// snapshot stream.
func (s *Session) LoadBreweries(ctx context.Context) error {
	if !s.syncing.CompareAndSwap(false, true) {
		s.logger.Debug("reconcile pass already running, coalescing")
		return nil
	}
	defer s.syncing.Store(false)

	passID := uuid.NewString()
	logger := s.logger.With("pass_id", passID)
	logger.Debug("reconcile pass started")

	// Hydrate from cache first so the view is never blank while the
	// network is slow or down.
	if err := s.refreshCatalog(ctx, true); err != nil {
		s.cell.Update(func(snap Snapshot) Snapshot {
			snap.IsLoading = false
			return snap
		})
		return err
	}

	staging := s.fetchAllPages(ctx, logger)

	if len(staging) > 0 {
		if err := s.store.Breweries.UpsertMany(ctx, staging); err != nil {
			logger.Warn("remote batch commit failed, keeping cached view", "error", err)
			return s.refreshCatalog(ctx, false)
		}
		logger.Debug("remote records committed", "count", len(staging))
	}

	// Full store re-read so seed and user records untouched by the
	// remote merge stay in the unified view.
	if err := s.refreshCatalog(ctx, false); err != nil {
		return err
	}

	all, err := s.store.Breweries.All(ctx)
	if err == nil {
		s.reindex(all)
	}

	logger.Debug("reconcile pass finished", "remote_records", len(staging))
	return nil
}

// fetchAllPages walks the paginated remote catalog sequentially,
// accumulating records. A short or empty page terminates pagination;
// a failed page aborts the walk but keeps the pages already
// accumulated, since the next pass retries from page 1 anyway.
func (s *Session) fetchAllPages(ctx context.Context, logger *slog.Logger) []domain.Brewery {
	pageSize := s.api.PageSize()
	var staging []domain.Brewery

	for page := 1; ; page++ {
		records, err := s.api.ListPage(ctx, page)
		if err != nil {
			logger.Warn("page fetch failed, stopping pagination",
				"page", page,
				"error", err,
			)
			break
		}

		staging = append(staging, records...)

		if len(records) < pageSize {
			break
		}
	}

	return staging
}
