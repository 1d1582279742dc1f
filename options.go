package fusion

import "time"

// DefaultCapacityWarnInterval is the minimum gap between capacity warnings
// logged by an Instrumented set.
const DefaultCapacityWarnInterval = 10 * time.Second

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	warnInterval     time.Duration
}

// Option configures an Instrumented set.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCapacityWarnInterval sets the minimum gap between warnings about
// inserts rejected with ErrCapacityExceeded. Zero warns on every rejection.
func WithCapacityWarnInterval(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		o.warnInterval = d
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		warnInterval:     DefaultCapacityWarnInterval,
	}
}
