// Package figtrack tracks a collectible-figure catalog against a public
// lineup page. Each run scrapes the lineup, reconciles the listings into a
// canonical JSON catalog with fuzzy matching and fill-empty merging,
// synthesizes deterministic placeholders for anything unmatched, backfills
// placeholders from an authoritative figure API, and persists the catalog
// once at the end.
//
// Example usage:
//
//	tracker, err := figtrack.New(
//		figtrack.WithStorePath("figures.json"),
//		figtrack.WithLineupURL("https://example.com/figures/"),
//		figtrack.WithFigureAPIURL("https://api.example.com/figures"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := tracker.Run(ctx)
package figtrack

import (
	"context"

	"github.com/figtrack/figtrack/internal/sources/figureapi"
	"github.com/figtrack/figtrack/internal/sources/lineup"
	"github.com/figtrack/figtrack/internal/transport"
	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/reconcile"
)

// Ingestor supplies the listings a run reconciles. The production
// implementation scrapes the lineup page; tests substitute fakes.
type Ingestor interface {
	Ingest(ctx context.Context) ([]catalogs.Listing, error)
}

// Authority supplies the authoritative figure list used to promote
// placeholders.
type Authority interface {
	FetchAll(ctx context.Context) ([]*catalogs.Entry, error)
}

// Tracker is the figtrack facade.
type Tracker interface {
	// Catalog loads the current catalog from the store.
	Catalog() (*catalogs.Catalog, error)

	// ShouldRun reports whether the catalog is stale enough to warrant a
	// run. Advisory; Run applies the same gate itself unless forced.
	ShouldRun() (bool, error)

	// Run executes one reconciliation run to completion.
	Run(ctx context.Context, opts ...RunOption) (*RunResult, error)
}

// client is the default Tracker implementation.
type client struct {
	options    *options
	store      *catalogs.Store
	reconciler *reconcile.Reconciler
	ingestor   Ingestor
	authority  Authority
}

// New creates a Tracker with the given options.
func New(opts ...Option) (Tracker, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	c := &client{
		options: options,
		store:   catalogs.NewStore(options.storePath),
		reconciler: reconcile.New(
			reconcile.WithMinSimilarity(options.minSimilarity),
			reconcile.WithBackfillThreshold(options.backfillThreshold),
		),
		ingestor:  options.ingestor,
		authority: options.authority,
	}

	httpClient := transport.New(options.httpTimeout)
	if c.ingestor == nil && options.lineupURL != "" {
		c.ingestor = lineup.New(options.lineupURL, httpClient)
	}
	if c.authority == nil && options.figureAPIURL != "" {
		c.authority = figureapi.New(options.figureAPIURL, httpClient)
	}

	return c, nil
}

// Catalog loads the current catalog from the store.
func (c *client) Catalog() (*catalogs.Catalog, error) {
	return c.store.Load()
}

// ShouldRun reports whether the catalog file is older than the cache TTL.
func (c *client) ShouldRun() (bool, error) {
	return c.store.IsStale(c.options.cacheTTL)
}
