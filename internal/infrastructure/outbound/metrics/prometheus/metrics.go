package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests handled by the presentation API",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_requests_total",
			Help: "Total number of requests sent to the remote post collection",
		},
		[]string{"operation", "success"},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_request_duration_seconds",
			Help:    "Duration of remote collection requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	SyncOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_operations_total",
			Help: "Total number of sync operations applied to the local store",
		},
		[]string{"operation", "success"},
	)

	RejectedOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_rejected_operations_total",
			Help: "Total number of mutations rejected because one was already in flight for the post",
		},
		[]string{"operation"},
	)

	StoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_posts",
			Help: "Number of posts in the local store",
		},
	)

	ActiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "state_stream_subscribers",
			Help: "Number of connected state stream subscribers",
		},
	)

	ThemeChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_changes_total",
			Help: "Total number of theme color and cycling changes",
		},
	)

	ServiceHealth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "service_health",
			Help: "Service health status (1 = healthy, 0 = unhealthy)",
		},
	)
)
