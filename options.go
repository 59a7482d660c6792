package lazysorted

// DefaultSortCutoff is the run length at or below which the engine switches
// from partitioning to insertion sort, resolving the whole run at once.
const DefaultSortCutoff = 16

type options struct {
	seed    uint64
	hasSeed bool
	cutoff  int
	logger  *Logger
}

func defaultOptions() options {
	return options{
		cutoff: DefaultSortCutoff,
		logger: NoopLogger(),
	}
}

// Option configures construction behavior.
type Option func(*options)

// WithSeed fixes the seed of the pivot-selection RNG, making the sequence of
// partitions (and therefore the exact boundary layout) reproducible.
//
// By default every List seeds its RNG from the system entropy source, so
// that no fixed input ordering can reliably trigger worst-case pivots.
// Reproducibility is mostly useful in tests and benchmarks.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithSortCutoff sets the run length at or below which a run is resolved
// with insertion sort instead of further partitioning. Values below 1 are
// clamped to 1.
//
// Lower values resolve fewer positions per query and keep queries lazier;
// higher values do more eager work per query but touch the boundary set less
// often. The default is DefaultSortCutoff.
func WithSortCutoff(cutoff int) Option {
	return func(o *options) {
		if cutoff < 1 {
			cutoff = 1
		}
		o.cutoff = cutoff
	}
}

// WithLogger sets the logger used for Debug-level selection diagnostics.
// If logger is nil, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
