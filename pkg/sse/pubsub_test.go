package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-service/pkg/config"
)

func TestRecipientFromChannel(t *testing.T) {
	tests := []struct {
		channel string
		wantID  string
		wantOK  bool
	}{
		{"notifications:user:u1", "u1", true},
		{"notifications:user:7f9a", "7f9a", true},
		{"notifications:lab", "", false},
		{"notifications:pharmacy", "", false},
		{"notifications:user:", "", false},
		{"other:user:u1", "", false},
	}
	for _, tt := range tests {
		id, ok := recipientFromChannel(tt.channel)
		assert.Equal(t, tt.wantOK, ok, tt.channel)
		assert.Equal(t, tt.wantID, id, tt.channel)
	}
}

func TestBridgeRouteTargetedMessage(t *testing.T) {
	hub := NewHub()
	b := NewBridge(nil, hub, config.BridgeConfig{})

	ch1, unsub1 := hub.Subscribe("u1")
	defer unsub1()
	ch2, unsub2 := hub.Subscribe("u2")
	defer unsub2()

	payload := []byte(`{"id":"t1","service":"lab"}`)
	b.route("notifications:user:u1", payload)

	select {
	case ev := <-ch1:
		assert.Equal(t, "notification", ev.Type)
		assert.Equal(t, json.RawMessage(payload), ev.Data)
	default:
		t.Fatal("targeted message did not reach the recipient's room")
	}
	select {
	case <-ch2:
		t.Fatal("targeted message leaked to another room")
	default:
	}
}

func TestBridgeRouteServiceChannelBroadcasts(t *testing.T) {
	hub := NewHub()
	b := NewBridge(nil, hub, config.BridgeConfig{})

	ch1, unsub1 := hub.Subscribe("u1")
	defer unsub1()
	ch2, unsub2 := hub.Subscribe("u2")
	defer unsub2()

	b.route("notifications:hospital", []byte(`{"id":"b1"}`))

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "notification", ev.Type)
		default:
			t.Fatal("broadcast did not reach every room")
		}
	}
}

func TestNewBridgeDefaults(t *testing.T) {
	b := NewBridge(nil, NewHub(), config.BridgeConfig{})
	require.NotNil(t, b)
	assert.Equal(t, "notifications:*", b.pattern)
	assert.Equal(t, time.Second, b.initialBackoff)
	assert.Equal(t, 30*time.Second, b.maxBackoff)
}
