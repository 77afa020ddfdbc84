package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/figtrack/figtrack/pkg/catalogs"
)

// NewListCommand creates the list command.
func NewListCommand(a App) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog entries",
		RunE: func(c *cobra.Command, args []string) error {
			tracker, err := a.Tracker()
			if err != nil {
				return err
			}

			catalog, err := tracker.Catalog()
			if err != nil {
				return err
			}

			t := newTable(c.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Series", "Type", "ID", "NA Release", "Provisional"})

			count := 0
			for _, e := range catalog.List() {
				if upcoming && !e.Provisional {
					continue
				}
				release := e.Release[catalogs.RegionNA]
				if release == "" {
					release = "-"
				}
				provisional := ""
				if e.Provisional {
					provisional = "yes"
				}
				t.AppendRow(table.Row{e.Name, e.Series, e.Type, e.Head + "-" + e.Tail, release, provisional})
				count++
			}

			t.AppendFooter(table.Row{"Total", count})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only show provisional (not yet confirmed) entries")

	return cmd
}
