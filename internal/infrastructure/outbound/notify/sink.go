package notify

import (
	"log/slog"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

type LogSink struct {
	log ports.Logger
}

func NewLogSink(log ports.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Success(message string) {
	s.log.Info("Notification", slog.String("level", string(model.NotificationSuccess)), slog.String("message", message))
}

func (s *LogSink) Error(message string) {
	s.log.Warn("Notification", slog.String("level", string(model.NotificationError)), slog.String("message", message))
}

// BroadcastSink forwards notifications to every stream subscriber.
type BroadcastSink struct {
	broadcaster ports.Broadcaster
}

func NewBroadcastSink(b ports.Broadcaster) *BroadcastSink {
	return &BroadcastSink{broadcaster: b}
}

func (s *BroadcastSink) Success(message string) {
	s.send(model.NotificationSuccess, message)
}

func (s *BroadcastSink) Error(message string) {
	s.send(model.NotificationError, message)
}

func (s *BroadcastSink) send(level model.NotificationLevel, message string) {
	s.broadcaster.Broadcast(model.StreamMessage{
		Type: model.StreamMessageNotification,
		Data: model.Notification{Level: level, Message: message},
	})
}

type MultiSink []ports.NotificationSink

func (m MultiSink) Success(message string) {
	for _, s := range m {
		s.Success(message)
	}
}

func (m MultiSink) Error(message string) {
	for _, s := range m {
		s.Error(message)
	}
}
