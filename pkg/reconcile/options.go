package reconcile

// Default thresholds.
const (
	// DefaultMinSimilarity is the minimum score for a listing to merge
	// into an existing catalog entry.
	DefaultMinSimilarity = 0.6

	// DefaultBackfillThreshold is the minimum score for a placeholder to
	// adopt an authoritative identity. Stricter than matching because a
	// promotion overwrites identity fields.
	DefaultBackfillThreshold = 0.7
)

// Options configures a Reconciler.
type Options struct {
	MinSimilarity     float64
	BackfillThreshold float64
}

// Option configures a Reconciler.
type Option func(*Options)

// WithMinSimilarity sets the match threshold.
func WithMinSimilarity(threshold float64) Option {
	return func(o *Options) {
		o.MinSimilarity = threshold
	}
}

// WithBackfillThreshold sets the promotion threshold.
func WithBackfillThreshold(threshold float64) Option {
	return func(o *Options) {
		o.BackfillThreshold = threshold
	}
}

func defaultOptions() Options {
	return Options{
		MinSimilarity:     DefaultMinSimilarity,
		BackfillThreshold: DefaultBackfillThreshold,
	}
}
