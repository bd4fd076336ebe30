package mocks

import (
	"fmt"
	"sync"
	"time"
)

// SequentialIDs is a deterministic ports.IDGenerator producing topic-1, topic-2, ...
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

// NewID returns the next identifier in sequence.
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("topic-%d", g.next)
}

// Clock is a ports.Clock that advances by Step on every call.
type Clock struct {
	mu      sync.Mutex
	Current time.Time
	Step    time.Duration
}

// NewClock creates a Clock starting at a fixed instant, ticking one second per call.
func NewClock() *Clock {
	return &Clock{
		Current: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Step:    time.Second,
	}
}

// Now returns the current instant and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}
