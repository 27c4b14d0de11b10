package utils

import (
	"time"

	"github.com/loov/hrtime"
)

// Clock measures the time between frames.
type Clock struct {
	now  func() time.Duration
	last time.Duration
}

func NewClock() *Clock {
	return newClock(hrtime.Now)
}

func newClock(now func() time.Duration) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick, or since the
// clock was created.
func (c *Clock) Tick() float32 {
	now := c.now()
	delta := now - c.last
	c.last = now
	return float32(delta.Seconds())
}

// Toggle flips its state once per key press, however many frames the key
// is held for.
type Toggle struct {
	On   bool
	held bool
}

// Update feeds the current key state and reports whether it flipped.
func (t *Toggle) Update(pressed bool) bool {
	if pressed && !t.held {
		t.held = true
		t.On = !t.On
		return true
	}
	if !pressed {
		t.held = false
	}
	return false
}
