package reconcile

import (
	"context"
	"sort"

	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
	"github.com/figtrack/figtrack/pkg/normalize"
	"github.com/figtrack/figtrack/pkg/score"
)

// Backfill promotes placeholder entries to authoritative identities. Each
// placeholder is scored against the authoritative list; at or above the
// backfill threshold the placeholder adopts the authoritative head, tail,
// type, character, and series, fills its empty image and release dates,
// and drops its provisional flag. Placeholders without a confident match
// stay provisional and are retried on later runs.
func (r *Reconciler) Backfill(ctx context.Context, catalog *catalogs.Catalog, authoritative []*catalogs.Entry) (Result, error) {
	log := logging.Ctx(ctx)

	// stable scan order regardless of how the source returned them
	sorted := make([]*catalogs.Entry, len(authoritative))
	copy(sorted, authoritative)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })

	var result Result
	for _, entry := range catalog.List() {
		if !entry.IsPlaceholder() {
			continue
		}

		match, best := r.bestAuthority(entry, sorted)
		if match == nil {
			log.Warn().
				Str("name", entry.Name).
				Float64("best_score", best).
				Msg("No authoritative match for placeholder")
			continue
		}

		if err := promote(catalog, entry, match); err != nil {
			if errors.Is(err, errors.ErrAlreadyExists) {
				log.Warn().
					Str("name", entry.Name).
					Str("head", match.Head).
					Str("tail", match.Tail).
					Msg("Authoritative identity already in catalog, placeholder kept")
				continue
			}
			return result, err
		}

		result.Backfilled++
		result.Changed = true
		log.Info().
			Str("name", entry.Name).
			Str("authority", match.Name).
			Float64("score", best).
			Msg("Promoted placeholder to authoritative identity")
	}

	log.Info().Int("backfilled", result.Backfilled).Msg("Backfill pass complete")
	return result, nil
}

// bestAuthority returns the authoritative entry with the highest score at
// or above the backfill threshold, or nil.
func (r *Reconciler) bestAuthority(placeholder *catalogs.Entry, authoritative []*catalogs.Entry) (*catalogs.Entry, float64) {
	name := normalize.Name(placeholder.Name)
	date := placeholder.ReleaseDate(catalogs.RegionNA)

	var (
		best      *catalogs.Entry
		bestScore float64
	)
	for _, candidate := range authoritative {
		s := score.Names(name, normalize.Name(candidate.Name), date, candidate.ReleaseDate(catalogs.RegionNA))
		if s > bestScore {
			best, bestScore = candidate, s
		}
	}

	if bestScore >= r.opts.BackfillThreshold {
		return best, bestScore
	}
	return nil, bestScore
}

// promote overwrites the placeholder's identity fields from the
// authoritative entry, fills its empty descriptive fields, clears the
// provisional flag, and rekeys it in the catalog. The placeholder is left
// untouched when the rekey fails.
func promote(catalog *catalogs.Catalog, placeholder, authority *catalogs.Entry) error {
	promoted := placeholder.Clone()

	promoted.Head = authority.Head
	promoted.Tail = authority.Tail
	promoted.Character = authority.Character
	promoted.Series = authority.Series
	promoted.Type = authority.Type
	if authority.GameSeries != "" {
		promoted.GameSeries = authority.GameSeries
	}
	if promoted.Image == "" {
		promoted.Image = authority.Image
	}
	for _, region := range catalogs.Regions {
		if promoted.Release[region] == "" {
			if date := authority.Release[region]; date != "" {
				promoted.SetReleaseDate(region, date)
			}
		}
	}
	promoted.Provisional = false

	return catalog.Replace(placeholder.Key(), promoted)
}
