// Package di provides dependency injection configuration for the
// BriefBeer catalog core.
package di

import (
	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/catalog"
	"github.com/adamtorokhu/BriefBeer/internal/config"
	"github.com/adamtorokhu/BriefBeer/internal/di/providers"
	"github.com/adamtorokhu/BriefBeer/internal/favorites"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/openbrewery"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
	"github.com/adamtorokhu/BriefBeer/internal/seed"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSeedLoader)
	do.Provide(injector, providers.ProvideFavorites)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Remote clients
	do.Provide(injector, providers.ProvideCatalogClient)
	do.Provide(injector, providers.ProvideLookupClient)

	// Session
	do.Provide(injector, providers.ProvideSession)

	return injector
}

// Bootstrap triggers lazy initialization of every service in
// dependency order.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*seed.Loader](injector)
	_ = do.MustInvoke[*favorites.Service](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*openbrewery.Client](injector)
	_ = do.MustInvoke[*openfoodfacts.Client](injector)
	_ = do.MustInvoke[*catalog.Session](injector)
	return nil
}
