package handlers

import (
	"testing"
	"time"

	"wavelength/internal/game"
)

func TestEventBus_PublishReachesSubscribers(t *testing.T) {
	eb := NewEventBus()

	ch := eb.Subscribe("room-1")
	other := eb.Subscribe("room-2")
	defer eb.Unsubscribe("room-2", other)

	eb.Publish(Event{SessionID: "room-1", Snapshot: game.Snapshot{ID: "room-1"}})

	select {
	case ev := <-ch:
		if ev.Snapshot.ID != "room-1" {
			t.Errorf("event snapshot id = %q", ev.Snapshot.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}

	select {
	case ev := <-other:
		t.Errorf("room-2 subscriber received event for %q", ev.SessionID)
	default:
	}

	eb.Unsubscribe("room-1", ch)
	if _, ok := <-ch; ok {
		t.Error("unsubscribed channel not closed")
	}
}

func TestEventBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	eb := NewEventBus()
	ch := eb.Subscribe("room-1")
	defer eb.Unsubscribe("room-1", ch)

	done := make(chan struct{})
	go func() {
		// More events than the channel buffers; publish must not stall.
		for i := 0; i < 100; i++ {
			eb.Publish(Event{SessionID: "room-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestNotify_BroadcastsToBus(t *testing.T) {
	h, _ := newTestRouter(t, nil)

	ch := h.eventBus.Subscribe("room-x")
	defer h.eventBus.Unsubscribe("room-x", ch)

	h.Notify("room-x", game.Snapshot{ID: "room-x", Phase: game.PhaseWaiting})

	select {
	case ev := <-ch:
		if ev.Snapshot.Phase != game.PhaseWaiting {
			t.Errorf("snapshot phase = %q", ev.Snapshot.Phase)
		}
	case <-time.After(time.Second):
		t.Fatal("Notify did not publish to the event bus")
	}
}
