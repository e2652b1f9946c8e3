package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"go-westeros/pkg/events"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// Hub fans realm events out to connected sockets. Events arrive over
// Redis pub/sub, so every server instance delivers to its own sockets
// regardless of which instance performed the mutation.
type Hub struct {
	publisher *events.Publisher
	mu        sync.RWMutex
	realms    map[string]map[*websocket.Conn]struct{}
	stopOnce  sync.Once
	stopCh    chan struct{}
}

// NewHub creates a new realtime hub
func NewHub(publisher *events.Publisher) *Hub {
	return &Hub{
		publisher: publisher,
		realms:    make(map[string]map[*websocket.Conn]struct{}),
		stopCh:    make(chan struct{}),
	}
}

// Add registers a socket on its realm's feed.
func (h *Hub) Add(realmKey string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.realms[realmKey] == nil {
		h.realms[realmKey] = make(map[*websocket.Conn]struct{})
	}
	h.realms[realmKey][conn] = struct{}{}

	slog.Info("Realtime client joined", "realm", realmKey, "clients", len(h.realms[realmKey]))
}

// Remove unregisters and closes a socket.
func (h *Hub) Remove(realmKey string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.realms[realmKey]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.realms, realmKey)
		}
	}
	conn.Close()
}

// Run consumes the realm event channel and fans each event out to the
// sockets of its realm. Blocks until the context is cancelled or Stop is
// called.
func (h *Hub) Run(ctx context.Context) {
	sub := h.publisher.Subscribe(ctx)
	defer sub.Close()

	ch := sub.Channel()
	slog.Info("Realtime hub listening", "channel", events.RealmChannel)

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.stopCh:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event events.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Error("Failed to decode realm event", "error", err)
				continue
			}
			h.broadcast(&event, []byte(msg.Payload))
		}
	}
}

// Stop halts the hub and closes every socket.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)

		h.mu.Lock()
		defer h.mu.Unlock()
		for realm, conns := range h.realms {
			for conn := range conns {
				conn.Close()
			}
			delete(h.realms, realm)
		}
	})
}

// broadcast writes an event to every socket in its realm. Dead sockets
// are dropped on write failure.
func (h *Hub) broadcast(event *events.Event, payload []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.realms[event.RealmKey]))
	for conn := range h.realms[event.RealmKey] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Debug("Dropping dead realtime client", "realm", event.RealmKey, "error", err)
			h.Remove(event.RealmKey, conn)
		}
	}
}

// ClientCount reports how many sockets a realm currently has.
func (h *Hub) ClientCount(realmKey string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.realms[realmKey])
}
