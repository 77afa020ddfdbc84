package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/figtrack/figtrack"
)

// newTable creates a table writer with the house style.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// printRunResult renders a run summary table.
func printRunResult(w io.Writer, result *figtrack.RunResult) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Run", ""})
	t.AppendRows([]table.Row{
		{"Status", string(result.Status)},
		{"Listings", result.Listings},
		{"Matched", result.Matched},
		{"Updated", result.Updated},
		{"New placeholders", result.New},
		{"Bundles excluded", result.Bundles},
		{"Backfilled", result.Backfilled},
	})
	if result.Reason != "" {
		t.AppendRow(table.Row{"Reason", result.Reason})
	}
	t.Render()
}
