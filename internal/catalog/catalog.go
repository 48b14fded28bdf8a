// Package catalog implements the session that reconciles the remote
// catalog, the bundled seed records, and user-authored records into one
// unified, observable view backed by the local store.
package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/favorites"
	"github.com/adamtorokhu/BriefBeer/internal/id"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
	"github.com/adamtorokhu/BriefBeer/internal/search"
	"github.com/adamtorokhu/BriefBeer/internal/state"
	"github.com/adamtorokhu/BriefBeer/internal/store"
	"github.com/adamtorokhu/BriefBeer/internal/validation"
)

// CatalogAPI is the remote catalog surface the session consumes.
type CatalogAPI interface {
	ListPage(ctx context.Context, page int) ([]domain.Brewery, error)
	GetByID(ctx context.Context, id string) (*domain.Brewery, error)
	PageSize() int
}

// ProductLookup resolves scanned codes to product information.
type ProductLookup interface {
	Lookup(ctx context.Context, code string) (*openfoodfacts.Product, bool, error)
}

// Session owns one catalog view: the snapshot cell, the store, the
// remote clients, the favorites ledger, and the search index. One
// instance per app session.
type Session struct {
	store     *store.Store
	api       CatalogAPI
	lookup    ProductLookup
	favorites *favorites.Service
	index     *search.Index
	validator *validation.Validator
	logger    *slog.Logger
	cell      *state.Cell[Snapshot]

	// syncing is the in-flight guard: concurrent LoadBreweries calls
	// coalesce into the one already running.
	syncing atomic.Bool
}

// Options configures a session. Store, API, and Favorites are
// required; Lookup and Index are optional features.
type Options struct {
	Store     *store.Store
	API       CatalogAPI
	Lookup    ProductLookup
	Favorites *favorites.Service
	Index     *search.Index
	Logger    *slog.Logger
}

// New creates a catalog session and publishes its initial snapshot.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		store:     opts.Store,
		api:       opts.API,
		lookup:    opts.Lookup,
		favorites: opts.Favorites,
		index:     opts.Index,
		validator: validation.New(),
		logger:    logger,
	}
	s.cell = state.NewCell(Snapshot{Favorites: opts.Favorites.List()})
	return s
}

// Snapshot returns the latest published view.
func (s *Session) Snapshot() Snapshot {
	return s.cell.Get()
}

// Watch streams snapshots. A slow reader only observes the latest
// state; intermediate snapshots are skipped and the writer never
// blocks.
func (s *Session) Watch(ctx context.Context) <-chan Snapshot {
	return s.cell.Watch(ctx)
}

// DismissNotice clears the pending notice if it still carries the
// given id. A notice that was already replaced stays untouched.
func (s *Session) DismissNotice(noticeID string) {
	s.cell.Update(func(snap Snapshot) Snapshot {
		if snap.Notice != nil && snap.Notice.ID == noticeID {
			snap.Notice = nil
		}
		return snap
	})
}

// SearchCatalog runs a full-text query against the local index.
func (s *Session) SearchCatalog(ctx context.Context, query string) (*search.Result, error) {
	if s.index == nil {
		return &search.Result{Query: query}, nil
	}
	params := search.DefaultParams()
	params.Query = query
	return s.index.Search(ctx, params)
}

// publishNotice replaces the pending notice wholesale.
func (s *Session) publishNotice(text string, action *NoticeAction) {
	notice := &Notice{
		ID:     id.MustGenerate("notice"),
		Text:   text,
		Action: action,
	}
	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.Notice = notice
		return snap
	})
}

// refreshCatalog re-reads the full store and republishes the unified
// list. Re-deriving from the store rather than patching the in-memory
// list keeps seed and user records visible regardless of which path
// mutated last.
func (s *Session) refreshCatalog(ctx context.Context, loading bool) error {
	breweries, err := s.store.Breweries.All(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "read catalog")
	}

	domain.SortBreweries(breweries)
	items := make([]domain.ListItem, 0, len(breweries))
	for i := range breweries {
		items = append(items, breweries[i].ListItem())
	}

	s.cell.Update(func(snap Snapshot) Snapshot {
		snap.AllBreweries = items
		snap.Filtered = applyFilters(items, snap.Query, snap.TypeFilter)
		snap.Favorites = s.favorites.List()
		snap.IsLoading = loading
		return snap
	})
	return nil
}

// reindex rebuilds the search documents for the given records.
func (s *Session) reindex(breweries []domain.Brewery) {
	if s.index == nil {
		return
	}
	docs := make([]*search.Document, 0, len(breweries))
	for i := range breweries {
		docs = append(docs, search.DocumentFor(&breweries[i]))
	}
	if err := s.index.IndexDocuments(docs); err != nil {
		s.logger.Warn("search index update failed", "error", err)
	}
}

// indexOne updates a single search document; indexing is best-effort.
func (s *Session) indexOne(b *domain.Brewery) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexDocument(search.DocumentFor(b)); err != nil {
		s.logger.Warn("search index update failed", "id", b.ID, "error", err)
	}
}

// unindexOne removes a record from the search index.
func (s *Session) unindexOne(recordID string) {
	if s.index == nil {
		return
	}
	if err := s.index.DeleteDocument(recordID); err != nil {
		s.logger.Warn("search index delete failed", "id", recordID, "error", err)
	}
}
