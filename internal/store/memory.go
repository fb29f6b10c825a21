// Package store owns the lifetime of game sessions. All room-scoped
// operations are dispatched by id through a MemoryStore; sessions are
// only ever destroyed here, never by the state machine itself.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"wavelength/internal/game"
)

// MemoryStore holds all live sessions in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session

	rules       game.Rules
	questions   *game.QuestionBank
	broadcaster game.Broadcaster

	timeout time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates an empty store. Sessions it creates play by
// rules and notify broadcaster; idleTimeout is how long a session may
// go without activity before the janitor reclaims it.
func NewMemoryStore(rules game.Rules, questions *game.QuestionBank, idleTimeout time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]*game.Session),
		rules:     rules,
		questions: questions,
		timeout:   idleTimeout,
		stop:      make(chan struct{}),
	}
}

// SetBroadcaster wires the transport-side notifier. Must be called
// before any session is created; the handler layer needs the store
// first, hence the two-step wiring.
func (s *MemoryStore) SetBroadcaster(b game.Broadcaster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcaster = b
}

// CreateSession registers a fresh waiting session under a new id.
func (s *MemoryStore) CreateSession() *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	sess := game.NewSession(id, s.rules, s.questions, s.broadcaster)
	s.sessions[id] = sess
	return sess
}

// GetSession retrieves a session by id.
func (s *MemoryStore) GetSession(id string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, game.ErrSessionNotFound
	}
	return sess, nil
}

// Evict closes and removes a session. Closing first guarantees no
// timer survives the registry entry.
func (s *MemoryStore) Evict(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if ok {
		sess.Close()
	}
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor sweeps idle sessions every interval until Stop.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()
}

// Stop ends the janitor. Live sessions are left untouched.
func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	cutoff := time.Now().Add(-s.timeout)

	s.mu.Lock()
	var expired []*game.Session
	for id, sess := range s.sessions {
		if sess.LastActivity().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
		log.Printf("evicted idle session %s", sess.ID)
	}
}
