package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	pkgLog "solosync/pkg/log"
)

// Hub fans frames out to websocket subscribers.
type Hub struct {
	l pkgLog.Logger

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

type subscriber struct {
	send chan []byte
}

// New creates an empty Hub.
func New(l pkgLog.Logger) *Hub {
	return &Hub{l: l, subs: make(map[*subscriber]struct{})}
}

func (h *Hub) subscribe() (*subscriber, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	s := &subscriber{send: make(chan []byte, subscriberBuffer)}
	h.subs[s] = struct{}{}
	return s, true
}

func (h *Hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.send)
	}
}

// Count returns the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Publish encodes the frame once and hands it to every subscriber.
// A subscriber whose buffer is full misses the frame.
func (h *Hub) Publish(ctx context.Context, event string, payload any) error {
	msg, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		return fmt.Errorf("realtime.Publish: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	dropped := 0
	for s := range h.subs {
		select {
		case s.send <- msg:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.l.Warnf(ctx, "realtime.Publish: %s dropped for %d slow subscribers", event, dropped)
	}
	return nil
}

// Close disconnects all subscribers and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for s := range h.subs {
		delete(h.subs, s)
		close(s.send)
	}
}
