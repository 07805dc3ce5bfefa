// Package events publishes board activity to Redis pub/sub channels so other
// processes (SSE fan-out, notifiers) can react to card changes.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Channel names.
const (
	CardCreated = "EVENT_CARD_CREATED"
	CardMoved   = "EVENT_CARD_MOVED"
	CardDeleted = "EVENT_CARD_DELETED"
)

// Publisher emits card events. A Publisher with a nil client drops every
// event, so callers never need to branch on whether Redis is configured.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher returns a Publisher backed by rdb. rdb may be nil.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish marshals payload and publishes it on channel. Failures are
// non-fatal: they are logged and swallowed, never surfaced to the caller.
func (p *Publisher) Publish(ctx context.Context, channel string, payload map[string]string) {
	if p == nil || p.rdb == nil {
		return
	}
	body, _ := json.Marshal(payload)
	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		slog.Warn("publish event failed", "channel", channel, "err", err)
	}
}
