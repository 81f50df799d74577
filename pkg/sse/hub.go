package sse

import "sync"

// Event represents a server-sent notification event payload.
// Type is used as SSE "event:" name, Data is an arbitrary JSON-serialisable body.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// subscriber owns one delivery channel. Sends and the final close are
// serialized through mu so a disconnect can never race a concurrent
// delivery into a send on a closed channel.
type subscriber struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// send delivers ev unless the subscriber is gone or its buffer is full.
func (s *subscriber) send(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
		// drop if subscriber is slow
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Hub keeps in-memory SSE subscribers grouped into per-recipient rooms.
// Internally it uses sync.Map to minimise lock contention at high scale.
// The hub is constructed once in app.Run and injected into the adapters
// and the fan-out bridge.
type Hub struct {
	// rooms maps recipient id -> *sync.Map representing a set of subscribers.
	rooms sync.Map // map[string]*sync.Map
}

// NewHub constructs a Hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe joins the recipient's room and returns a channel plus an
// unsubscribe function that should be called on disconnect. The channel
// is closed on unsubscribe.
func (h *Hub) Subscribe(recipientID string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, 16)}

	// Lazily create the inner set for this recipient.
	v, _ := h.rooms.LoadOrStore(recipientID, &sync.Map{})
	inner := v.(*sync.Map)
	inner.Store(sub, struct{}{})

	unsubscribe := func() {
		inner.Delete(sub)
		sub.close()
		// Note: we intentionally do not remove empty inner maps from
		// the outer rooms map to keep implementation simple.
	}

	return sub.ch, unsubscribe
}

// Publish sends an event to all subscribers in the recipient's room.
// Slow consumers are skipped to avoid blocking producer code.
func (h *Hub) Publish(recipientID string, ev Event) {
	v, ok := h.rooms.Load(recipientID)
	if !ok {
		return
	}
	h.publishRoom(v.(*sync.Map), ev)
}

// Broadcast sends an event to every connected subscriber across all rooms.
// Used for notifications that carry no recipient.
func (h *Hub) Broadcast(ev Event) {
	h.rooms.Range(func(_, v interface{}) bool {
		h.publishRoom(v.(*sync.Map), ev)
		return true
	})
}

func (h *Hub) publishRoom(room *sync.Map, ev Event) {
	room.Range(func(key, _ interface{}) bool {
		sub, ok := key.(*subscriber)
		if !ok {
			return true
		}
		sub.send(ev)
		return true
	})
}
