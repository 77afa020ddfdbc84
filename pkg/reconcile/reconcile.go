// Package reconcile implements the catalog reconciliation core: fuzzy
// matching of scraped listings against catalog entries, fill-empty merging,
// deterministic placeholder creation for unmatched listings, and promotion
// of placeholders from an authoritative source. The package is pure
// in-memory computation; all I/O lives with the callers.
package reconcile

import (
	"context"

	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/classify"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
	"github.com/figtrack/figtrack/pkg/normalize"
	"github.com/figtrack/figtrack/pkg/score"
)

// Reconciler applies scraped listings to a catalog.
type Reconciler struct {
	opts Options
}

// New creates a Reconciler with the given options.
func New(opts ...Option) *Reconciler {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Reconciler{opts: options}
}

// Reconcile matches each listing against the catalog and either merges it
// into its best match or creates a placeholder entry for it. Bundles are
// classified out before matching. The pass is idempotent: re-running with
// the same listings changes nothing.
func (r *Reconciler) Reconcile(ctx context.Context, catalog *catalogs.Catalog, listings []catalogs.Listing) (Result, error) {
	log := logging.Ctx(ctx)

	var result Result
	for i := range listings {
		listing := &listings[i]

		if classify.IsBundle(listing.Name) {
			result.Bundles++
			log.Debug().Str("name", listing.Name).Msg("Excluded bundle listing")
			continue
		}

		entry, best := r.bestMatch(catalog, listing)
		if entry != nil {
			result.Matched++
			oldKey := entry.Key()
			if merge(entry, listing) {
				// filling the series changes the entry's key
				if entry.Key() != oldKey {
					if err := catalog.Replace(oldKey, entry); err != nil {
						return result, err
					}
				}
				result.Updated++
				result.Changed = true
				log.Info().
					Str("name", listing.Name).
					Str("entry", entry.Name).
					Float64("score", best).
					Msg("Updated catalog entry from listing")
			} else {
				log.Debug().
					Str("name", listing.Name).
					Str("entry", entry.Name).
					Float64("score", best).
					Msg("Listing matched, nothing to fill")
			}
			continue
		}

		placeholder := newPlaceholder(listing)
		if err := catalog.Add(placeholder); err != nil {
			if !errors.Is(err, errors.ErrAlreadyExists) {
				return result, err
			}
			// a placeholder with this identity survived an earlier run
			// under a name the scorer did not reach; fill it instead
			existing, getErr := catalog.Get(placeholder.Key())
			if getErr != nil {
				return result, getErr
			}
			result.Matched++
			if merge(existing, listing) {
				result.Updated++
				result.Changed = true
			}
			continue
		}

		result.New++
		result.Changed = true
		log.Info().
			Str("name", listing.Name).
			Str("head", placeholder.Head).
			Str("tail", placeholder.Tail).
			Msg("Created placeholder for unmatched listing")
	}

	log.Info().
		Int("matched", result.Matched).
		Int("updated", result.Updated).
		Int("new", result.New).
		Int("bundles", result.Bundles).
		Msg("Reconciliation pass complete")

	return result, nil
}

// bestMatch scores the listing against every catalog entry and returns the
// highest scorer at or above the match threshold, or nil. Entries iterate
// in key order and only a strictly greater score displaces the incumbent,
// so ties resolve to the lowest key.
func (r *Reconciler) bestMatch(catalog *catalogs.Catalog, listing *catalogs.Listing) (*catalogs.Entry, float64) {
	name := normalize.Name(listing.Name)
	date := listing.ReleaseTime()

	var (
		best      *catalogs.Entry
		bestScore float64
	)
	for _, entry := range catalog.List() {
		s := score.Names(name, normalize.Name(entry.Name), date, entry.ReleaseDate(catalogs.RegionNA))
		if s > bestScore {
			best, bestScore = entry, s
		}
	}

	if bestScore >= r.opts.MinSimilarity {
		return best, bestScore
	}
	return nil, bestScore
}
