package cmd

import (
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/figtrack/figtrack"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(a App) *cobra.Command {
	var (
		force        bool
		dryRun       bool
		skipBackfill bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Scrape the lineup and reconcile it into the catalog",
		Long: `Update scrapes the configured lineup page, matches the listings against
the catalog, creates placeholders for unknown figures, backfills them
from the authoritative API, and saves the catalog if anything changed.

A file lock next to the catalog serializes concurrent invocations.`,
		RunE: func(c *cobra.Command, args []string) error {
			lock := flock.New(a.CatalogPath() + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another update is already running")
			}
			defer func() { _ = lock.Unlock() }()

			tracker, err := a.Tracker()
			if err != nil {
				return err
			}

			var runOpts []figtrack.RunOption
			if force {
				runOpts = append(runOpts, figtrack.WithForce())
			}
			if dryRun {
				runOpts = append(runOpts, figtrack.WithDryRun())
			}
			if skipBackfill {
				runOpts = append(runOpts, figtrack.WithSkipBackfill())
			}

			ctx := logging.WithLogger(c.Context(), a.Logger())
			result, err := tracker.Run(ctx, runOpts...)
			if err != nil {
				return err
			}

			printRunResult(c.OutOrStdout(), result)

			// a partial run saved its results but must still alert
			// whatever scheduled it
			if result.Status == figtrack.StatusPartial {
				return fmt.Errorf("run completed partially: %s", result.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "run even when the catalog is fresh")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute changes without saving")
	cmd.Flags().BoolVar(&skipBackfill, "skip-backfill", false, "skip the authoritative backfill stage")

	return cmd
}
