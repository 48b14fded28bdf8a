package providers

import (
	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/catalog"
	"github.com/adamtorokhu/BriefBeer/internal/favorites"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/openbrewery"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
)

// ProvideSession provides the catalog session, the single logical
// owner of the unified catalog view.
func ProvideSession(i do.Injector) (*catalog.Session, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	favs := do.MustInvoke[*favorites.Service](i)
	api := do.MustInvoke[*openbrewery.Client](i)
	lookup := do.MustInvoke[*openfoodfacts.Client](i)

	return catalog.New(catalog.Options{
		Store:     storeHandle.Store,
		API:       api,
		Lookup:    lookup,
		Favorites: favs,
		Index:     indexHandle.Index,
		Logger:    log.Logger,
	}), nil
}
