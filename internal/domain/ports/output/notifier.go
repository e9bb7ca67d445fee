package ports

// NotificationSink surfaces human-readable outcomes to the user. Calls must not block.
//
//go:generate mockery --name NotificationSink --dir . --output ../../../../mocks --outpkg mocks --filename NotificationSink.go
type NotificationSink interface {
	Success(message string)
	Error(message string)
}
