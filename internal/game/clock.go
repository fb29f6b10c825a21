package game

import (
	"sync"
	"time"
)

// Clock drives a session's countdown at a fixed interval. Arm always
// cancels any previously armed ticker before starting a new one, so at
// most one ticking goroutine exists per Clock at any time. Overlapping
// tickers would double-decrement deadlines and fire transitions twice.
type Clock struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewClock returns a disarmed clock.
func NewClock() *Clock {
	return &Clock{}
}

// Arm starts ticking, replacing any previous schedule. The tick
// callback reports whether the clock should keep running; returning
// false ends the goroutine without further ticks.
func (c *Clock) Arm(interval time.Duration, tick func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
	}
	stop := make(chan struct{})
	c.stop = stop

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if !tick() {
					return
				}
			}
		}
	}()
}

// Disarm cancels the pending schedule, if any. Safe to call from a
// tick callback and safe to call repeatedly.
func (c *Clock) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}
