// Package app provides the application context and dependency management
// for the figtrack CLI: configuration loading, logger setup, and lazy
// construction of the tracker instance the commands share.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/figtrack/figtrack"
)

// App represents the figtrack application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Tracker instance (lazy-initialized, singleton)
	mu      sync.Mutex
	tracker figtrack.Tracker
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// CatalogPath returns the configured catalog file path.
func (a *App) CatalogPath() string {
	return a.config.CatalogPath
}

// Tracker returns the tracker instance, creating it lazily if needed.
func (a *App) Tracker() (figtrack.Tracker, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tracker != nil {
		return a.tracker, nil
	}

	tracker, err := figtrack.New(a.buildTrackerOptions()...)
	if err != nil {
		return nil, err
	}

	a.tracker = tracker
	return tracker, nil
}

// buildTrackerOptions constructs tracker options from the app configuration.
func (a *App) buildTrackerOptions() []figtrack.Option {
	opts := []figtrack.Option{
		figtrack.WithStorePath(a.config.CatalogPath),
		figtrack.WithCacheTTL(a.config.CacheTTL()),
		figtrack.WithMinSimilarity(a.config.MinSimilarity),
		figtrack.WithBackfillThreshold(a.config.BackfillThreshold),
	}

	if a.config.LineupURL != "" {
		opts = append(opts, figtrack.WithLineupURL(a.config.LineupURL))
	}
	if a.config.FigureAPIURL != "" {
		opts = append(opts, figtrack.WithFigureAPIURL(a.config.FigureAPIURL))
	}
	if a.config.HTTPTimeout > 0 {
		opts = append(opts, figtrack.WithHTTPTimeout(a.config.HTTPTimeout))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithTracker sets a custom tracker instance (useful for testing).
func WithTracker(tracker figtrack.Tracker) Option {
	return func(a *App) error {
		a.tracker = tracker
		return nil
	}
}
