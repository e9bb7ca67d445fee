package prometheus

import (
	"strconv"
	"time"

	ports "post-sync-client/internal/domain/ports/output"
)

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() ports.MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementRemoteRequests(operation string, success bool) {
	RemoteRequestsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordRemoteRequestDuration(operation string, duration time.Duration) {
	RemoteRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementSyncOperations(operation string, success bool) {
	SyncOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) IncrementRejectedOperations(operation string) {
	RejectedOperationsTotal.WithLabelValues(operation).Inc()
}

func (p *PrometheusMetricsProvider) SetStoreSize(size int) {
	StoreSize.Set(float64(size))
}

func (p *PrometheusMetricsProvider) SetActiveSubscribers(count int) {
	ActiveSubscribers.Set(float64(count))
}

func (p *PrometheusMetricsProvider) IncrementThemeChanges() {
	ThemeChangesTotal.Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
