package service

import (
	"sync"
	"time"
)

// MonotonicClock implements ports.Clock. Now never returns a time earlier
// than a previously returned one, even if the wall clock steps back.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewMonotonicClock creates a clock over the UTC wall clock.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: func() time.Time { return time.Now().UTC() }}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now()
	if t.Before(c.last) {
		return c.last
	}
	c.last = t
	return t
}
