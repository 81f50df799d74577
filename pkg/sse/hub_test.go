package sse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesRoomOnly(t *testing.T) {
	h := NewHub()

	ch1, unsub1 := h.Subscribe("u1")
	defer unsub1()
	ch2, unsub2 := h.Subscribe("u2")
	defer unsub2()

	h.Publish("u1", Event{Type: "notification", Data: "hello"})

	select {
	case ev := <-ch1:
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("u1 subscriber did not receive the event")
	}
	select {
	case <-ch2:
		t.Fatal("u2 subscriber must not receive u1's event")
	default:
	}
}

func TestHubPublishUnknownRoomIsNoop(t *testing.T) {
	h := NewHub()
	// Nothing subscribed; must not panic or block.
	h.Publish("nobody", Event{Type: "notification"})
}

func TestHubBroadcastReachesEveryRoom(t *testing.T) {
	h := NewHub()

	ch1, unsub1 := h.Subscribe("u1")
	defer unsub1()
	ch2, unsub2 := h.Subscribe("u2")
	defer unsub2()

	h.Broadcast(Event{Type: "notification", Data: "all hands"})

	for name, ch := range map[string]<-chan Event{"u1": ch1, "u2": ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "all hands", ev.Data, name)
		default:
			t.Fatalf("%s subscriber did not receive the broadcast", name)
		}
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()

	ch, unsub := h.Subscribe("u1")
	unsub()

	// Channel is closed on unsubscribe.
	_, ok := <-ch
	require.False(t, ok)

	// Publishing afterwards must not panic on the closed channel.
	h.Publish("u1", Event{Type: "notification"})
}

// A disconnect racing an in-flight delivery must never panic: closing the
// subscriber channel is serialized against concurrent Publish/Broadcast.
func TestHubConcurrentChurnDuringPublish(t *testing.T) {
	h := NewHub()
	const room = "u1"

	stop := make(chan struct{})
	var publishers sync.WaitGroup
	for i := 0; i < 4; i++ {
		publishers.Add(1)
		go func() {
			defer publishers.Done()
			ev := Event{Type: "notification"}
			for {
				select {
				case <-stop:
					return
				default:
				}
				h.Publish(room, ev)
				h.Broadcast(ev)
			}
		}()
	}

	var churners sync.WaitGroup
	for i := 0; i < 4; i++ {
		churners.Add(1)
		go func() {
			defer churners.Done()
			for j := 0; j < 2000; j++ {
				_, unsubscribe := h.Subscribe(room)
				unsubscribe()
			}
		}()
	}

	churners.Wait()
	close(stop)
	publishers.Wait()
}

func TestHubSlowSubscriberIsSkipped(t *testing.T) {
	h := NewHub()

	ch, unsub := h.Subscribe("u1")
	defer unsub()

	// Fill the buffer and keep publishing; extras are dropped, not blocked.
	for i := 0; i < 64; i++ {
		h.Publish("u1", Event{Type: "notification", Data: i})
	}
	assert.Equal(t, 16, len(ch), "buffer holds the first events, the rest are dropped")
}
