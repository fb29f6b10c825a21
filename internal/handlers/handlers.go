package handlers

import (
	"sync"
	"time"

	"wavelength/internal/config"
	"wavelength/internal/game"
	"wavelength/internal/store"
)

// Handler holds dependencies for HTTP handlers. It also implements
// game.Broadcaster: sessions notify it on every mutation, it fans the
// snapshot out to SSE subscribers and owns the post-reveal delay.
type Handler struct {
	store    *store.MemoryStore
	config   *config.ServerConfig
	eventBus *EventBus
}

// New creates a handler and wires it into the store as the broadcaster
// for every session the store creates.
func New(s *store.MemoryStore, cfg *config.ServerConfig) *Handler {
	h := &Handler{
		store:    s,
		config:   cfg,
		eventBus: NewEventBus(),
	}
	s.SetBroadcaster(h)
	return h
}

// Notify implements game.Broadcaster. Publishing is non-blocking, and
// a snapshot entering reveal schedules the round advance. Reveal is
// entered exactly once per round, so exactly one advance is scheduled.
func (h *Handler) Notify(sessionID string, snap game.Snapshot) {
	h.eventBus.Publish(Event{SessionID: sessionID, Snapshot: snap})
	if snap.Phase == game.PhaseReveal {
		h.scheduleAdvance(sessionID)
	}
}

func (h *Handler) scheduleAdvance(sessionID string) {
	time.AfterFunc(h.config.Game.RevealDelay, func() {
		sess, err := h.store.GetSession(sessionID)
		if err != nil {
			// Evicted while the reveal was on screen; nothing to advance.
			return
		}
		sess.AdvanceRound()
	})
}

// Event carries one broadcast snapshot to SSE subscribers.
type Event struct {
	SessionID string
	Snapshot  game.Snapshot
}

// EventBus manages per-session event subscriptions.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe registers for a session's events.
func (eb *EventBus) Subscribe(sessionID string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 16)
	eb.subscribers[sessionID] = append(eb.subscribers[sessionID], ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (eb *EventBus) Unsubscribe(sessionID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[sessionID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[sessionID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
}

// Publish delivers an event to all of a session's subscribers. Slow
// subscribers are skipped; snapshots are full replacements, so a
// dropped one is made up for by the next.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.SessionID] {
		select {
		case ch <- event:
		default:
		}
	}
}
