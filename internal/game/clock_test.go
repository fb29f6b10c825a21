package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestClock_ArmTicks(t *testing.T) {
	c := NewClock()
	defer c.Disarm()

	var ticks atomic.Int32
	c.Arm(5*time.Millisecond, func() bool {
		ticks.Add(1)
		return true
	})

	time.Sleep(60 * time.Millisecond)
	if ticks.Load() == 0 {
		t.Error("armed clock never ticked")
	}
}

func TestClock_RearmCancelsPrevious(t *testing.T) {
	c := NewClock()
	defer c.Disarm()

	var old, fresh atomic.Int32
	c.Arm(5*time.Millisecond, func() bool {
		old.Add(1)
		return true
	})
	c.Arm(5*time.Millisecond, func() bool {
		fresh.Add(1)
		return true
	})

	time.Sleep(60 * time.Millisecond)
	if old.Load() != 0 {
		t.Errorf("cancelled schedule ticked %d times", old.Load())
	}
	if fresh.Load() == 0 {
		t.Error("replacement schedule never ticked")
	}
}

func TestClock_DisarmStopsTicks(t *testing.T) {
	c := NewClock()

	var ticks atomic.Int32
	c.Arm(5*time.Millisecond, func() bool {
		ticks.Add(1)
		return true
	})
	c.Disarm()

	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != 0 {
		t.Errorf("disarmed clock ticked %d times", got)
	}

	// Disarming again must not panic.
	c.Disarm()
}

func TestClock_CallbackStopsSchedule(t *testing.T) {
	c := NewClock()
	defer c.Disarm()

	var ticks atomic.Int32
	c.Arm(5*time.Millisecond, func() bool {
		return ticks.Add(1) < 3
	})

	time.Sleep(80 * time.Millisecond)
	if got := ticks.Load(); got != 3 {
		t.Errorf("clock ticked %d times after callback asked to stop at 3", got)
	}
}
