package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts HTTP requests by method, path, status.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDurationSeconds measures request latency.
	RequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UpstreamRequestsTotal counts calls to the task service by
	// operation and outcome.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upstream_requests_total",
			Help: "Total upstream task-service requests",
		},
		[]string{"operation", "outcome"},
	)

	// TasksSkippedTotal counts upstream records dropped during
	// normalization (missing identifier).
	TasksSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_tasks_skipped_total",
			Help: "Upstream tasks skipped during normalization",
		},
	)

	// TransitionsTotal counts status transition attempts by outcome.
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_transitions_total",
			Help: "Status transition attempts",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDurationSeconds,
		UpstreamRequestsTotal,
		TasksSkippedTotal,
		TransitionsTotal,
	)
}
