package ports

import model "post-sync-client/internal/domain/models"

type Broadcaster interface {
	Broadcast(msg model.StreamMessage)
}
