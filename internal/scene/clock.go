package scene

import "time"

// StepClock is a manual clock for headless runs and tests.
type StepClock struct {
	t time.Time
}

// NewStepClock returns a clock starting at start.
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{t: start}
}

// Now returns the current manual time.
func (c *StepClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *StepClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
