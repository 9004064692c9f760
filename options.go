package weights

import (
	"log/slog"

	"github.com/hupe1980/weights/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
}

// Option configures table construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for lifecycle events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &weights.BasicMetricsCollector{}
//	w, _ := weights.New(1<<18, 2, weights.WithMetricsCollector(metrics))
//	// ... train, share ...
//	stats := metrics.GetStats()
//	fmt.Printf("Shared: %d bytes in %dns\n", stats.SharedBytes, stats.ShareAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for lifecycle events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := weights.NewJSONLogger(slog.LevelInfo)
//	w, _ := weights.New(1<<18, 2, weights.WithLogger(logger))
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

// WithMemoryController charges the table's storage to rc and lets concurrent
// sweeps draw workers and bandwidth from it. Several tables may share one
// controller.
func WithMemoryController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
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
