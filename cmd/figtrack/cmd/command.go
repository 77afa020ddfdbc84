// Package cmd implements the figtrack CLI subcommands.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/figtrack/figtrack"
)

// App is the slice of the application the commands need. Defined here so
// the command package does not depend on the app package.
type App interface {
	Tracker() (figtrack.Tracker, error)
	Logger() *zerolog.Logger
	CatalogPath() string
}
