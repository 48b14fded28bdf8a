// Package seed populates the local store from the bundled regional
// dataset before the first remote sync of a cold start.
package seed

import (
	"context"
	_ "embed"
	"encoding/json/v2"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/store"
	"github.com/adamtorokhu/BriefBeer/internal/util"
)

// Country is the fixed country constant for the bundled dataset.
const Country = "Hungary"

//go:embed regions.json
var bundled []byte

// Bundled returns the embedded dataset. Exposed for tooling.
func Bundled() []byte {
	return bundled
}

// dataset is the bundled seed file layout. Only regions is consumed;
// lists is presentation-layer material.
type dataset struct {
	Regions map[string]region `json:"regions"`
	Lists   map[string][]string `json:"lists,omitempty"`
}

type region struct {
	Breweries []breweryDef `json:"breweries"`
}

type breweryDef struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Type     string   `json:"type,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Beers    []string `json:"beers,omitempty"`
	QR       string   `json:"qr,omitempty"`
}

// Loader parses the seed dataset into the local store at most once per
// instance. All read and parse failures are absorbed: sync continues with
// whatever the store already holds.
type Loader struct {
	store  *store.Store
	logger *slog.Logger
	path   string // optional override of the embedded dataset
	once   sync.Once
}

// New creates a seed loader. path overrides the embedded dataset when
// non-empty.
func New(s *store.Store, logger *slog.Logger, path string) *Loader {
	return &Loader{
		store:  s,
		logger: logger,
		path:   path,
	}
}

// LoadOnce loads the seed dataset on the first call and is a no-op on
// every later call. Re-running on a later cold start re-upserts identical
// ids with identical values, which is a no-op in effect.
func (l *Loader) LoadOnce(ctx context.Context) {
	l.once.Do(func() {
		if err := l.load(ctx); err != nil {
			l.logger.Warn("seed load failed, continuing with existing store",
				"error", err,
			)
		}
	})
}

func (l *Loader) load(ctx context.Context) error {
	raw := bundled
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeSeedParse, "read seed dataset")
		}
		raw = data
	}

	records, err := Parse(raw)
	if err != nil {
		return err
	}

	if err := l.store.Breweries.UpsertMany(ctx, records); err != nil {
		return apperrors.Wrap(err, apperrors.CodeSeedParse, "persist seed records")
	}

	l.logger.Info("seed dataset loaded", "records", len(records))
	return nil
}

// Parse decodes a seed dataset into catalog records. Exposed separately
// so tooling can inspect a dataset without writing to a store.
func Parse(raw []byte) ([]domain.Brewery, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSeedParse, "parse seed dataset")
	}

	var records []domain.Brewery
	for regionName, reg := range ds.Regions {
		for _, def := range reg.Breweries {
			if def.Name == "" {
				continue
			}
			records = append(records, toRecord(regionName, def))
		}
	}
	return records, nil
}

// toRecord maps a seed definition to a catalog record. The region maps to
// both State and StateProvince, matching the remote catalog's dual fields.
func toRecord(regionName string, def breweryDef) domain.Brewery {
	notes := def.Notes
	if len(def.Beers) > 0 {
		if notes != "" {
			notes += "\n"
		}
		notes += "Beers: " + strings.Join(def.Beers, ", ")
	}

	return domain.Brewery{
		ID:            domain.SeedIDPrefix + util.SeedSlug(def.Name),
		Name:          def.Name,
		BreweryType:   def.Type,
		City:          def.Location,
		State:         regionName,
		StateProvince: regionName,
		Country:       Country,
		Notes:         notes,
		QRCode:        def.QR,
		Origin:        domain.OriginSeed,
	}
}
