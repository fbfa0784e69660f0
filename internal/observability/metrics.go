package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ActiveSessions tracks how many workout sessions are currently being
	// timed across all athletes.
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "coaching_app",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Number of workout sessions currently active.",
	})

	// WorkoutCompletionsTotal counts sessions that finished and produced a
	// completion record.
	WorkoutCompletionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coaching_app",
		Subsystem: "sessions",
		Name:      "completions_total",
		Help:      "Total workout completions recorded.",
	})

	// MetricEntriesTotal counts accepted metric entries.
	MetricEntriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coaching_app",
		Subsystem: "metrics",
		Name:      "entries_total",
		Help:      "Total metric entries recorded.",
	})

	// HTTPRequestsTotal counts handled HTTP requests by method, route and
	// status class.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coaching_app",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coaching_app",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(
		ActiveSessions,
		WorkoutCompletionsTotal,
		MetricEntriesTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
