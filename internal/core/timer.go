package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// Elapsed wall-clock time is accumulated on every poll and consumed one
// interval at a time; leftover time carries over to the next poll.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. A nil
// clock falls back to time.Now.
func NewFixedStep(tps int, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Accumulated returns the time banked but not yet consumed by a step.
func (f *FixedStep) Accumulated() time.Duration { return f.accumulator }

// Accumulate adds the wall-clock time elapsed since the previous poll.
func (f *FixedStep) Accumulate() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// ShouldStep reports whether a full interval is banked and, if so, consumes it.
func (f *FixedStep) ShouldStep() bool {
	if f.accumulator > f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Fold drops whole intervals from the accumulator, keeping only the remainder.
func (f *FixedStep) Fold() {
	f.accumulator %= f.step
}

// Resync moves the reference point to now without banking the elapsed time.
func (f *FixedStep) Resync() {
	f.last = f.now()
}
