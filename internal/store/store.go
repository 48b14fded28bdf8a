// Package store persists catalog records and favorite snapshots in a
// Badger key-value database. Each call is atomic at single-call
// granularity; no multi-call transaction is exposed to callers.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Breweries holds catalog records keyed by record id, indexed by origin.
	Breweries *Entity[domain.Brewery]
	// Favorites holds denormalized favorite snapshots keyed by record id.
	// Deliberately decoupled from Breweries: a favorite survives eviction
	// of its catalog row.
	Favorites *Entity[domain.FavoriteBrewery]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.initBreweries()
	store.initFavorites()

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// DB exposes the raw database handle for maintenance tooling only.
func (s *Store) DB() *badger.DB {
	return s.db
}

// initBreweries initializes the Breweries entity on the store.
// The origin index lets user-authored records be listed without a full scan.
func (s *Store) initBreweries() {
	s.Breweries = NewEntity(s, "brewery:", func(b *domain.Brewery) string {
		return b.ID
	}).WithIndex("origin", func(b *domain.Brewery) []string {
		return []string{string(b.Origin)}
	})
}

// initFavorites initializes the Favorites entity on the store.
func (s *Store) initFavorites() {
	s.Favorites = NewEntity(s, "favorite:", func(f *domain.FavoriteBrewery) string {
		return f.BreweryID
	})
}
