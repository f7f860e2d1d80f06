package binding

type options struct {
	profile          Profile
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Registry.
type Option func(*options)

// WithProfile selects which operations the registry exposes.
// The default is ProfileFull.
func WithProfile(p Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &binding.BasicMetricsCollector{}
//	reg := binding.New(binding.WithMetricsCollector(metrics))
//	// ... use reg ...
//	stats := metrics.GetStats()
//	fmt.Printf("Calls: %d, Avg latency: %dns\n", stats.CallCount, stats.CallAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := binding.NewJSONLogger(os.Stderr, slog.LevelDebug)
//	reg := binding.New(binding.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		profile:          ProfileFull,
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
