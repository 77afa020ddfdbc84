package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/figtrack/figtrack/cmd/figtrack/cmd"
)

// Execute builds the command tree and runs it with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// rootCommand builds the root cobra command with global flags and all
// subcommands attached.
func (a *App) rootCommand() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		noColor bool
	)

	root := &cobra.Command{
		Use:     "figtrack",
		Short:   "Track a collectible-figure lineup against a local catalog",
		Long: `figtrack scrapes a public figure lineup page, reconciles the listings
into a local JSON catalog, and backfills unknown figures from an
authoritative figure API.`,
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			a.config.UpdateFromFlags(verbose, quiet, noColor)
			logger := NewLogger(a.config)
			a.logger = &logger
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("figtrack %s (commit %s, built %s)\n", a.version, a.commit, a.date))

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (warnings and errors only)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(cmd.NewUpdateCommand(a))
	root.AddCommand(cmd.NewListCommand(a))

	return root
}

// ContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ExitOnError prints the error and exits non-zero.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
