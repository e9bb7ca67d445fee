package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

type subscriber struct {
	id   uuid.UUID
	send chan []byte
}

// Hub fans stream messages out to connected websocket subscribers.
// A subscriber whose buffer is full misses the message rather than stalling the sender.
type Hub struct {
	log     ports.Logger
	metrics ports.MetricsProvider

	mu     sync.RWMutex
	subs   map[uuid.UUID]*subscriber
	closed bool
}

func NewHub(log ports.Logger, metrics ports.MetricsProvider) *Hub {
	return &Hub{
		log:     log,
		metrics: metrics,
		subs:    make(map[uuid.UUID]*subscriber),
	}
}

var _ ports.Broadcaster = (*Hub)(nil)

func (h *Hub) Broadcast(msg model.StreamMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("Failed to encode stream message", slog.String("type", string(msg.Type)), slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs {
		select {
		case sub.send <- payload:
		default:
			h.log.Warn("Dropping stream message for slow subscriber", slog.String("subscriber", sub.id.String()))
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) register(initial ...model.StreamMessage) (*subscriber, bool) {
	sub := &subscriber{id: uuid.New(), send: make(chan []byte, sendBuffer+len(initial))}
	for _, msg := range initial {
		payload, err := json.Marshal(msg)
		if err != nil {
			h.log.Error("Failed to encode initial stream message", slog.String("error", err.Error()))
			continue
		}
		sub.send <- payload
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, false
	}
	h.subs[sub.id] = sub
	count := len(h.subs)
	h.mu.Unlock()

	h.metrics.SetActiveSubscribers(count)
	h.log.Debug("Stream subscriber registered", slog.String("subscriber", sub.id.String()))
	return sub, true
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subs, sub.id)
	close(sub.send)
	count := len(h.subs)
	h.mu.Unlock()

	h.metrics.SetActiveSubscribers(count)
	h.log.Debug("Stream subscriber removed", slog.String("subscriber", sub.id.String()))
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.send)
	}
	h.mu.Unlock()
	h.metrics.SetActiveSubscribers(0)
}

// Serve pumps messages to conn until the client goes away or the hub closes.
// initial messages are delivered before any broadcast.
func (h *Hub) Serve(conn *websocket.Conn, initial ...model.StreamMessage) {
	defer conn.Close()

	sub, ok := h.register(initial...)
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(time.Second))
		return
	}
	defer h.unregister(sub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reader: the stream is one-way, reads only keep pongs flowing and detect disconnects.
	go func() {
		defer cancel()
		_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.log.Debug("Stream write failed", slog.String("subscriber", sub.id.String()), slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
