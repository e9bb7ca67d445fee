package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	metrics "post-sync-client/internal/infrastructure/outbound/metrics/prometheus"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	p := metrics.NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(metrics.SyncOperationsTotal.WithLabelValues("create", "true"))
	p.IncrementSyncOperations("create", true)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SyncOperationsTotal.WithLabelValues("create", "true")))

	rejected := testutil.ToFloat64(metrics.RejectedOperationsTotal.WithLabelValues("delete"))
	p.IncrementRejectedOperations("delete")
	assert.Equal(t, rejected+1, testutil.ToFloat64(metrics.RejectedOperationsTotal.WithLabelValues("delete")))

	p.SetStoreSize(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.StoreSize))

	p.SetActiveSubscribers(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.ActiveSubscribers))

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ServiceHealth))
	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ServiceHealth))

	p.RecordRemoteRequestDuration("list", 15*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.RemoteRequestDuration))
}
