package roaringview

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	strict           bool
}

// Option configures New.
type Option func(*options)

// WithLogger configures structured logging for construction and WriteTo.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := roaringview.NewJSONLogger(slog.LevelDebug)
//	d, _ := roaringview.New(data, roaringview.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &roaringview.BasicMetricsCollector{}
//	d, _ := roaringview.New(data, roaringview.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithStrictValidation makes New also verify that partition keys are strictly
// increasing and that every run partition's runs add up to its stored
// cardinality. Both checks are linear in the size of the metadata.
//
// Without it, New still guarantees that no later read leaves the region.
func WithStrictValidation() Option {
	return func(o *options) {
		o.strict = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
