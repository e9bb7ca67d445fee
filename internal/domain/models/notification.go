package model

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

type StreamMessageType string

const (
	StreamMessageState        StreamMessageType = "state"
	StreamMessageNotification StreamMessageType = "notification"
)

// StreamMessage is one frame pushed to state stream subscribers.
type StreamMessage struct {
	Type StreamMessageType `json:"type"`
	Data any               `json:"data"`
}
