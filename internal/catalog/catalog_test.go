package catalog_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamtorokhu/BriefBeer/internal/catalog"
	"github.com/adamtorokhu/BriefBeer/internal/domain"
	apperrors "github.com/adamtorokhu/BriefBeer/internal/errors"
	"github.com/adamtorokhu/BriefBeer/internal/favorites"
	"github.com/adamtorokhu/BriefBeer/internal/openfoodfacts"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

// fakeAPI scripts the remote catalog for tests. Pages are served in
// order; pageErr fails a specific page.
type fakeAPI struct {
	pageSize    int
	pages       [][]domain.Brewery
	pageErr     map[int]error
	details     map[string]*domain.Brewery
	detailErr   error
	calls       atomic.Int32
	detailCalls atomic.Int32

	// If set, ListPage signals entered and then waits on release,
	// letting tests hold a pass open.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeAPI) ListPage(ctx context.Context, page int) ([]domain.Brewery, error) {
	f.calls.Add(1)
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if err, ok := f.pageErr[page]; ok {
		return nil, err
	}
	if page-1 < len(f.pages) {
		return f.pages[page-1], nil
	}
	return nil, nil
}

func (f *fakeAPI) GetByID(ctx context.Context, id string) (*domain.Brewery, error) {
	f.detailCalls.Add(1)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if b, ok := f.details[id]; ok {
		return b, nil
	}
	return nil, apperrors.NotFoundf("brewery %s not found", id)
}

func (f *fakeAPI) PageSize() int {
	if f.pageSize == 0 {
		return 50
	}
	return f.pageSize
}

// fakeLookup scripts the product-identification service.
type fakeLookup struct {
	product *openfoodfacts.Product
	found   bool
	err     error
}

func (f *fakeLookup) Lookup(ctx context.Context, code string) (*openfoodfacts.Product, bool, error) {
	return f.product, f.found, f.err
}

type fixture struct {
	session *catalog.Session
	store   *store.Store
	api     *fakeAPI
}

func setup(t *testing.T, api *fakeAPI, lookup catalog.ProductLookup) *fixture {
	t.Helper()

	dir, err := os.MkdirTemp("", "briefbeer-catalog-*")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)

	s, err := store.New(dir, logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
		os.RemoveAll(dir)
	})

	favs, err := favorites.New(context.Background(), s, logger)
	require.NoError(t, err)

	session := catalog.New(catalog.Options{
		Store:     s,
		API:       api,
		Lookup:    lookup,
		Favorites: favs,
		Logger:    logger,
	})
	return &fixture{session: session, store: s, api: api}
}

// remotePage builds n remote records named after the id prefix.
func remotePage(prefix string, n int) []domain.Brewery {
	page := make([]domain.Brewery, 0, n)
	for i := range n {
		id := fmt.Sprintf("%s-%03d", prefix, i)
		page = append(page, domain.Brewery{
			ID:     id,
			Name:   "Brewery " + id,
			Origin: domain.OriginRemote,
		})
	}
	return page
}

func ids(items []domain.ListItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
