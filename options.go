package sightline

import "github.com/hupe1980/sightline/fov"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxDepth         int
}

// Option configures a Tracker.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sightline.BasicMetricsCollector{}
//	tr := sightline.New[string](sightline.WithMetricsCollector(metrics))
//	// ... use tr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Syncs: %d, Applied: %d\n", stats.SyncCount, stats.SyncApplied)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sightline.NewJSONLogger(slog.LevelInfo)
//	tr := sightline.New[string](sightline.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMaxDepth sets the default field-of-view depth used by Observe.
// Use fov.Unbounded to disable the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxDepth:         fov.DefaultMaxDepth,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
