package fov

// DefaultMaxDepth bounds the scan when no WithMaxDepth option is given.
const DefaultMaxDepth = 100

// Unbounded disables the depth limit. The scan then ends only when every arc
// is closed by blocking cells or runs off the world; a fully open, infinite
// world never terminates.
const Unbounded = -1

type options struct {
	maxDepth    int
	parallelism int
}

func defaultOptions() options {
	return options{maxDepth: DefaultMaxDepth}
}

// Option configures a field-of-view scan.
type Option func(*options)

// WithMaxDepth limits how many rows each quadrant scans. Zero restricts the
// result to the origin. Any negative value is treated as Unbounded.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = Unbounded
		}
		o.maxDepth = n
	}
}

// WithParallelism limits how many fields Survey computes at once.
// Values <= 0 mean GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
