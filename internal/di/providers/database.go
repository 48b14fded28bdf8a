package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/config"
	"github.com/adamtorokhu/BriefBeer/internal/favorites"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/seed"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideSeedLoader provides the bundled-dataset loader. The
// composition root runs it once on open, before the session is used.
func ProvideSeedLoader(i do.Injector) (*seed.Loader, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return seed.New(storeHandle.Store, log.Logger, cfg.Seed.Path), nil
}

// ProvideFavorites provides the favorites ledger, hydrated from the
// store.
func ProvideFavorites(i do.Injector) (*favorites.Service, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return favorites.New(context.Background(), storeHandle.Store, log.Logger)
}
