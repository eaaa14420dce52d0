// Package clock provides the simulated marketplace clock. Order ETAs and
// seasonal offers are driven by this clock, which users can advance in whole
// days to watch shipped orders deliver themselves.
package clock

import (
	"sync"
	"time"
)

type Simulated struct {
	mu     sync.Mutex
	base   time.Time
	offset time.Duration
}

// New returns a simulated clock anchored at the current wall time.
func New() *Simulated {
	return &Simulated{base: time.Now()}
}

// NewAt returns a simulated clock anchored at t. Used by tests that need a
// known weekday or month.
func NewAt(t time.Time) *Simulated {
	return &Simulated{base: t}
}

// Now returns the current simulated instant.
func (c *Simulated) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Add(c.offset)
}

// AdvanceDays moves the clock forward by n whole days.
func (c *Simulated) AdvanceDays(n int) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += time.Duration(n) * 24 * time.Hour
	return c.base.Add(c.offset)
}

// Reset re-anchors the clock at the current wall time and drops any
// accumulated offset.
func (c *Simulated) Reset() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = time.Now()
	c.offset = 0
	return c.base
}
