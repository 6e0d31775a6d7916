package engine

import (
	"sync"
	"time"
)

// Clock is the time source a Loop steps its scheduler to
type Clock interface {
	Now() time.Time
}

// TimeProvider is the wall clock; readings carry the monotonic component
type TimeProvider struct{}

// NewTimeProvider creates a wall clock
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns time.Now
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to; safe for concurrent use
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock reading start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps to t, backwards included
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
