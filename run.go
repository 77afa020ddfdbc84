package figtrack

import (
	"context"
	"fmt"

	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
	"github.com/figtrack/figtrack/pkg/reconcile"
)

// State is a run's position in its lifecycle. Runs move strictly forward;
// there are no retries inside a run.
type State string

// Run states.
const (
	StateIdle            State = "idle"
	StateLoaded          State = "loaded"
	StateClassified      State = "classified"
	StateMatched         State = "matched"
	StateMerged          State = "merged"
	StateBackfillPending State = "backfill_pending"
	StatePersisted       State = "persisted"
	StateDone            State = "done"
	StateAborted         State = "aborted"
	StatePartialSuccess  State = "partial_success"
)

// Status summarizes a run's outcome.
type Status string

// Run statuses.
const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// RunResult reports what a run did.
type RunResult struct {
	Status   Status
	State    State
	Reason   string
	Listings int
	reconcile.Result
}

// runOptions holds per-run flags.
type runOptions struct {
	force        bool
	dryRun       bool
	skipBackfill bool
}

// RunOption configures a single run.
type RunOption func(*runOptions)

// WithForce bypasses the staleness gate.
func WithForce() RunOption {
	return func(o *runOptions) { o.force = true }
}

// WithDryRun computes everything but never persists.
func WithDryRun() RunOption {
	return func(o *runOptions) { o.dryRun = true }
}

// WithSkipBackfill skips the authoritative backfill stage.
func WithSkipBackfill() RunOption {
	return func(o *runOptions) { o.skipBackfill = true }
}

// Run executes one reconciliation run to completion. Ingestion failure
// aborts the run before any catalog mutation can persist; backfill failure
// degrades to partial success and still persists the merge results. The
// catalog is written at most once, and only when something changed.
func (c *client) Run(ctx context.Context, opts ...RunOption) (*RunResult, error) {
	var runOpts runOptions
	for _, opt := range opts {
		opt(&runOpts)
	}

	log := logging.Ctx(ctx)
	result := &RunResult{Status: StatusError, State: StateIdle}

	if !runOpts.force {
		stale, err := c.store.IsStale(c.options.cacheTTL)
		if err != nil {
			result.Reason = "staleness check failed"
			return result, err
		}
		if !stale {
			result.Status = StatusSkipped
			result.Reason = fmt.Sprintf("catalog fresher than %s", c.options.cacheTTL)
			log.Info().Str("reason", result.Reason).Msg("Run skipped")
			return result, nil
		}
	}

	if c.ingestor == nil {
		result.Reason = "no ingestor configured"
		return result, &errors.ValidationError{Field: "ingestor", Message: "required for Run"}
	}

	catalog, err := c.store.Load()
	if err != nil {
		result.Reason = "catalog load failed"
		return result, err
	}
	result.State = StateLoaded
	log.Info().Int("entries", catalog.Len()).Msg("Catalog loaded")

	listings, err := c.ingestor.Ingest(logging.WithStage(ctx, "ingest"))
	if err != nil {
		result.State = StateAborted
		result.Reason = "ingestion failed"
		log.Err(err).Msg("Run aborted, catalog untouched")
		return result, err
	}
	if len(listings) == 0 {
		result.State = StateAborted
		result.Reason = "ingestion yielded no listings"
		log.Error().Msg("Run aborted, catalog untouched")
		return result, fmt.Errorf("run aborted: %w", errors.ErrNoListings)
	}
	result.Listings = len(listings)

	recResult, err := c.reconciler.Reconcile(logging.WithStage(ctx, "reconcile"), catalog, listings)
	result.Result = recResult
	if err != nil {
		result.State = StateAborted
		result.Reason = "reconciliation failed"
		return result, err
	}
	result.State = StateMerged

	backfillFailed := false
	if !runOpts.skipBackfill && c.authority != nil {
		result.State = StateBackfillPending
		entries, err := c.authority.FetchAll(logging.WithStage(ctx, "backfill"))
		if err != nil {
			backfillFailed = true
			result.Reason = "backfill source unavailable"
			log.Err(err).Msg("Backfill skipped, keeping merge results")
		} else {
			bfResult, err := c.reconciler.Backfill(logging.WithStage(ctx, "backfill"), catalog, entries)
			result.Result.Merge(bfResult)
			if err != nil {
				result.State = StateAborted
				result.Reason = "backfill failed"
				return result, err
			}
		}
	}

	if result.Result.Changed && !runOpts.dryRun {
		if err := c.store.Save(catalog); err != nil {
			result.Reason = "catalog save failed"
			return result, err
		}
		result.State = StatePersisted
		log.Info().Str("path", c.store.Path()).Msg("Catalog persisted")
	} else {
		log.Info().Bool("dry_run", runOpts.dryRun).Bool("changed", result.Result.Changed).Msg("Persist skipped")
	}

	if backfillFailed {
		result.Status = StatusPartial
		result.State = StatePartialSuccess
	} else {
		result.Status = StatusSuccess
		result.State = StateDone
		result.Reason = ""
	}

	log.Info().
		Str("status", string(result.Status)).
		Int("listings", result.Listings).
		Int("matched", result.Matched).
		Int("updated", result.Updated).
		Int("new", result.New).
		Int("backfilled", result.Backfilled).
		Msg("Run complete")
	return result, nil
}
