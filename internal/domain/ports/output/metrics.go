package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementRemoteRequests(operation string, success bool)
	RecordRemoteRequestDuration(operation string, duration time.Duration)

	IncrementSyncOperations(operation string, success bool)
	IncrementRejectedOperations(operation string)
	SetStoreSize(size int)

	SetActiveSubscribers(count int)
	IncrementThemeChanges()

	SetServiceHealth(healthy bool)
}
