// Package testutil provides deterministic test doubles for the lynx
// packages, so the same timing scenarios can be asserted exactly instead
// of sleeping and hoping.
package testutil

import (
	"time"

	"github.com/import-this/lynx/stopwatch"
)

// ManualClock is a stopwatch.Clock whose reading only changes when the
// test advances it.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock positioned at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(1_000_000, 0)}
}

// Now returns the current manual reading.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to the instant t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

var _ stopwatch.Clock = (*ManualClock)(nil)
