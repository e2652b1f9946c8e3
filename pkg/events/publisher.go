package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis channel carrying realm change events between server instances.
const RealmChannel = "realm:events"

// Event kinds emitted by the rules modules. Clients re-fetch realm state
// when they receive one; the payload identifies what changed, not how.
const (
	KindProfileUpdated = "profile.updated"
	KindProfileCreated = "profile.created"
	KindConflictUpdate = "conflict.updated"
	KindMessageCreated = "message.created"
)

// Event is a realm-scoped change notification.
type Event struct {
	Kind      string    `json:"kind"`
	RealmKey  string    `json:"realm_key"`
	SubjectID string    `json:"subject_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher fans realm events out through Redis pub/sub so every server
// instance can deliver them to its connected sockets.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish emits an event for a realm. Failures are logged, not returned:
// a missed notification only delays the client's next re-fetch, it must
// never fail the mutation that triggered it.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p == nil || p.client == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to marshal realm event", "error", err, "kind", event.Kind)
		return
	}

	if err := p.client.Publish(ctx, RealmChannel, payload).Err(); err != nil {
		slog.ErrorContext(ctx, "Failed to publish realm event",
			"error", err, "kind", event.Kind, "realm", event.RealmKey)
	}
}

// Subscribe returns the pub/sub subscription for realm events.
func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.client.Subscribe(ctx, RealmChannel)
}
