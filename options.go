package spatialgo

import (
	"runtime"

	"github.com/hupe1980/spatialgo/backend"
)

type options struct {
	svd         backend.SVD
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

// Option configures Fitter constructor behavior.
type Option func(*options)

// WithBackend configures the numeric factorization backend.
//
// If nil is passed, the gonum-backed default is used.
func WithBackend(svd backend.SVD) Option {
	return func(o *options) {
		if svd != nil {
			o.svd = svd
		}
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithParallelism bounds the number of concurrent fits performed by FitAll.
// Values below 1 reset to the default (GOMAXPROCS).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}
