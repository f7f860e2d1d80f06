package binding

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    calls   *prometheus.CounterVec
//	    latency *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordCall(op string, mutating bool, duration time.Duration, err error) {
//	    p.calls.WithLabelValues(op).Inc()
//	    p.latency.WithLabelValues(op).Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordCall is called after each operation dispatched by a Registry.
	// op is the operation name, mutating reports whether the operation
	// modifies its first argument, duration is the time taken, and err is
	// nil if the call succeeded.
	RecordCall(op string, mutating bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCall(string, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CallCount      atomic.Int64
	CallErrors     atomic.Int64
	CallTotalNanos atomic.Int64
	MutatingCalls  atomic.Int64
}

// RecordCall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCall(_ string, mutating bool, duration time.Duration, err error) {
	b.CallCount.Add(1)
	b.CallTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CallErrors.Add(1)
	}
	if mutating {
		b.MutatingCalls.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CallCount:     b.CallCount.Load(),
		CallErrors:    b.CallErrors.Load(),
		CallAvgNanos:  b.getAvgCallNanos(),
		MutatingCalls: b.MutatingCalls.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCallNanos() int64 {
	count := b.CallCount.Load()
	if count == 0 {
		return 0
	}
	return b.CallTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CallCount     int64
	CallErrors    int64
	CallAvgNanos  int64
	MutatingCalls int64
}
