// Package briefbeer is the embeddable catalog core: an offline-first
// brewery catalog that reconciles a remote paginated API, a bundled
// seed dataset, and user-authored records into one observable view.
//
// A presentation layer opens the core once per app session:
//
//	app, err := briefbeer.Open(ctx)
//	if err != nil { ... }
//	defer app.Close()
//
//	go app.Session().LoadBreweries(ctx)
//	for snap := range app.Watch(ctx) {
//	    render(snap)
//	}
package briefbeer

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/adamtorokhu/BriefBeer/internal/catalog"
	"github.com/adamtorokhu/BriefBeer/internal/di"
	"github.com/adamtorokhu/BriefBeer/internal/seed"
)

// App is one open catalog core. It owns the store, the search index,
// and the session, and releases them on Close.
type App struct {
	injector *do.RootScope
	session  *catalog.Session
}

// Open builds the catalog core from configuration, loads the bundled
// seed dataset into the store, and returns the ready app. Seed
// problems are absorbed: a missing or malformed dataset leaves the
// store as it was.
func Open(ctx context.Context) (*App, error) {
	injector := di.NewContainer()
	if err := di.Bootstrap(injector); err != nil {
		return nil, err
	}

	loader := do.MustInvoke[*seed.Loader](injector)
	loader.LoadOnce(ctx)

	return &App{
		injector: injector,
		session:  do.MustInvoke[*catalog.Session](injector),
	}, nil
}

// Session returns the catalog session for issuing operations.
func (a *App) Session() *catalog.Session {
	return a.session
}

// Snapshot returns the latest published catalog view.
func (a *App) Snapshot() catalog.Snapshot {
	return a.session.Snapshot()
}

// Watch streams catalog snapshots. Slow readers skip to the latest
// state; the channel closes when ctx is done.
func (a *App) Watch(ctx context.Context) <-chan catalog.Snapshot {
	return a.session.Watch(ctx)
}

// Close shuts down the session's resources, store and search index
// included.
func (a *App) Close() error {
	// Shutdown always returns a report; it only carries an error when
	// a service failed to stop.
	report := a.injector.Shutdown()
	if report != nil && !report.Succeed {
		return report
	}
	return nil
}
