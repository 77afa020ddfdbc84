package figtrack

import (
	"time"

	"github.com/figtrack/figtrack/pkg/constants"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/reconcile"
)

// Defaults for tracker construction.
const (
	// DefaultStorePath is where the catalog persists when unconfigured.
	DefaultStorePath = constants.DefaultStorePath

	// DefaultCacheTTL is how fresh the catalog must be for the staleness
	// gate to skip a run.
	DefaultCacheTTL = constants.DefaultCacheTTL
)

// options holds tracker configuration.
type options struct {
	storePath         string
	lineupURL         string
	figureAPIURL      string
	httpTimeout       time.Duration
	cacheTTL          time.Duration
	minSimilarity     float64
	backfillThreshold float64
	ingestor          Ingestor
	authority         Authority
}

// Option configures a Tracker.
type Option func(*options) error

func defaultOptions() *options {
	return &options{
		storePath:         DefaultStorePath,
		cacheTTL:          DefaultCacheTTL,
		minSimilarity:     reconcile.DefaultMinSimilarity,
		backfillThreshold: reconcile.DefaultBackfillThreshold,
	}
}

// WithStorePath sets the catalog file path.
func WithStorePath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{Field: "store_path", Message: "must not be empty"}
		}
		o.storePath = path
		return nil
	}
}

// WithLineupURL sets the lineup page to scrape. Ignored when a custom
// Ingestor is provided.
func WithLineupURL(url string) Option {
	return func(o *options) error {
		o.lineupURL = url
		return nil
	}
}

// WithFigureAPIURL sets the authoritative figure API endpoint. Ignored
// when a custom Authority is provided.
func WithFigureAPIURL(url string) Option {
	return func(o *options) error {
		o.figureAPIURL = url
		return nil
	}
}

// WithHTTPTimeout bounds the remote source requests.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout < 0 {
			return &errors.ValidationError{Field: "http_timeout", Value: timeout, Message: "must not be negative"}
		}
		o.httpTimeout = timeout
		return nil
	}
}

// WithCacheTTL sets the staleness window for the run gate.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) error {
		if ttl < 0 {
			return &errors.ValidationError{Field: "cache_ttl", Value: ttl, Message: "must not be negative"}
		}
		o.cacheTTL = ttl
		return nil
	}
}

// WithMinSimilarity sets the listing match threshold.
func WithMinSimilarity(threshold float64) Option {
	return func(o *options) error {
		if threshold < 0 || threshold > 1 {
			return &errors.ValidationError{Field: "min_similarity", Value: threshold, Message: "must be between 0 and 1"}
		}
		o.minSimilarity = threshold
		return nil
	}
}

// WithBackfillThreshold sets the placeholder promotion threshold.
func WithBackfillThreshold(threshold float64) Option {
	return func(o *options) error {
		if threshold < 0 || threshold > 1 {
			return &errors.ValidationError{Field: "backfill_threshold", Value: threshold, Message: "must be between 0 and 1"}
		}
		o.backfillThreshold = threshold
		return nil
	}
}

// WithIngestor substitutes the listing source.
func WithIngestor(ingestor Ingestor) Option {
	return func(o *options) error {
		o.ingestor = ingestor
		return nil
	}
}

// WithAuthority substitutes the authoritative figure source.
func WithAuthority(authority Authority) Option {
	return func(o *options) error {
		o.authority = authority
		return nil
	}
}
