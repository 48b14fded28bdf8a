package providers

import (
	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/config"
	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the local full-text catalog index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewIndex(search.Options{
		DataPath: cfg.Data.BasePath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &SearchIndexHandle{Index: index}, nil
}
