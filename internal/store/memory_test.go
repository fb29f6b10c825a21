package store

import (
	"testing"
	"time"

	"wavelength/internal/game"
)

const testCatalog = `
categories:
  - name: Test
    prompts: [Hot or Cold]
`

func newTestStore(t *testing.T, idleTimeout time.Duration) *MemoryStore {
	t.Helper()

	qb, err := game.NewQuestionBank([]byte(testCatalog))
	if err != nil {
		t.Fatalf("failed to build question bank: %v", err)
	}
	s := NewMemoryStore(game.DefaultRules(), qb, idleTimeout)
	t.Cleanup(s.Stop)
	return s
}

func TestCreateAndGetSession(t *testing.T) {
	s := newTestStore(t, time.Hour)

	sess := s.CreateSession()
	if sess.ID == "" {
		t.Fatal("created session has empty id")
	}

	got, err := s.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sess {
		t.Error("GetSession returned a different session")
	}

	other := s.CreateSession()
	if other.ID == sess.ID {
		t.Error("two sessions share an id")
	}
}

func TestGetSession_NotFound(t *testing.T) {
	s := newTestStore(t, time.Hour)

	if _, err := s.GetSession("nope"); err != game.ErrSessionNotFound {
		t.Errorf("missing session returned %v, want ErrSessionNotFound", err)
	}
}

func TestEvict_ClosesSession(t *testing.T) {
	s := newTestStore(t, time.Hour)
	sess := s.CreateSession()

	s.Evict(sess.ID)

	if _, err := s.GetSession(sess.ID); err != game.ErrSessionNotFound {
		t.Errorf("evicted session still registered: %v", err)
	}
	// The evicted session must be dead, not just unregistered.
	if _, err := sess.Join("Late", "gray"); err != game.ErrSessionClosed {
		t.Errorf("join on evicted session returned %v, want ErrSessionClosed", err)
	}
}

func TestJanitor_SweepsIdleSessions(t *testing.T) {
	s := newTestStore(t, 20*time.Millisecond)
	sess := s.CreateSession()

	s.StartJanitor(10 * time.Millisecond)

	deadline := time.After(time.Second)
	for s.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("janitor never swept the idle session")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if _, err := sess.Join("Late", "gray"); err != game.ErrSessionClosed {
		t.Errorf("swept session returned %v, want ErrSessionClosed", err)
	}
}
