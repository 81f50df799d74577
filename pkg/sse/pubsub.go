package sse

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"notification-service/pkg/config"
	"notification-service/pkg/logger"
)

const (
	// userChannelPrefix marks channels that target a single recipient;
	// everything else under the pattern is a per-service broadcast channel.
	userChannelPrefix = "notifications:user:"

	// eventTypeNotification is the SSE event name pushed to clients.
	eventTypeNotification = "notification"
)

// Bridge subscribes to the store's notification channels with a wildcard
// pattern and fans matching messages into the local Hub: per-user channels
// reach only that recipient's room, per-service channels reach everyone.
//
// The bridge is a best-effort pipeline. Messages published while it is
// down are not replayed; the query API stays the durable source of truth.
type Bridge struct {
	client         *redis.Client
	hub            *Hub
	pattern        string
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewBridge wires a redis client to a hub. cfg zero-values fall back to the
// defaults from config.normalize.
func NewBridge(client *redis.Client, hub *Hub, cfg config.BridgeConfig) *Bridge {
	pattern := cfg.ChannelPattern
	if pattern == "" {
		pattern = "notifications:*"
	}
	initial := cfg.InitialRetryInterval
	if initial <= 0 {
		initial = time.Second
	}
	max := cfg.MaxRetryInterval
	if max < initial {
		max = 30 * time.Second
	}
	return &Bridge{
		client:         client,
		hub:            hub,
		pattern:        pattern,
		initialBackoff: initial,
		maxBackoff:     max,
	}
}

// Run blocks until ctx is cancelled, resubscribing after errors with
// exponential backoff capped at maxBackoff. A successful listen resets
// the backoff.
func (b *Bridge) Run(ctx context.Context) {
	logger.Infof("sse: fan-out bridge starting pattern=%s", b.pattern)

	backoff := b.initialBackoff
	restarts := 0
	for {
		started := time.Now()
		err := b.listen(ctx)
		if ctx.Err() != nil {
			logger.Infof("sse: fan-out bridge stopped")
			return
		}
		if time.Since(started) > b.maxBackoff {
			backoff = b.initialBackoff
		}

		restarts++
		logger.Errorf("sse: bridge subscription lost, restarting restarts=%d backoff=%s error=%v",
			restarts, backoff, err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > b.maxBackoff {
			backoff = b.maxBackoff
		}
	}
}

// listen holds one pattern subscription open and routes messages until the
// connection breaks or ctx is cancelled.
func (b *Bridge) listen(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, b.pattern)
	defer pubsub.Close()

	// Ensure subscription is established before reading messages.
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return errors.New("subscription channel closed")
			}
			b.route(msg.Channel, []byte(msg.Payload))
		}
	}
}

// route pushes the serialized notification either to a single recipient's
// room or to every connected client.
func (b *Bridge) route(channel string, payload []byte) {
	ev := Event{Type: eventTypeNotification, Data: json.RawMessage(payload)}
	if recipientID, ok := recipientFromChannel(channel); ok {
		b.hub.Publish(recipientID, ev)
		return
	}
	b.hub.Broadcast(ev)
}

// recipientFromChannel extracts the recipient id from a per-user channel
// name ("notifications:user:{rid}").
func recipientFromChannel(channel string) (string, bool) {
	if !strings.HasPrefix(channel, userChannelPrefix) {
		return "", false
	}
	recipientID := strings.TrimPrefix(channel, userChannelPrefix)
	return recipientID, recipientID != ""
}
