package providers

import (
	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/config"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/openbrewery"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
)

// ProvideCatalogClient provides the remote catalog client.
func ProvideCatalogClient(i do.Injector) (*openbrewery.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return openbrewery.NewClient(openbrewery.Options{
		BaseURL:  cfg.Catalog.BaseURL,
		PageSize: cfg.Catalog.PageSize,
		Timeout:  cfg.Catalog.RequestTimeout,
		Logger:   log.Logger,
	}), nil
}

// ProvideLookupClient provides the barcode product-lookup client.
func ProvideLookupClient(i do.Injector) (*openfoodfacts.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return openfoodfacts.NewClient(openfoodfacts.Options{
		BaseURL: cfg.Lookup.BaseURL,
		Timeout: cfg.Lookup.RequestTimeout,
		Logger:  log.Logger,
	}), nil
}
