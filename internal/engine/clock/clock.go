// Package clock turns wall time into animation steps.
package clock

import "time"

// Defaults for New.
const (
	DefaultStep     = 12 * time.Millisecond
	DefaultMaxDelta = 100 * time.Millisecond
)

// Clock yields an animation delta once more than Step has elapsed since the
// last yielded tick. Deltas are clamped to MaxDelta so a stalled frame does
// not jump the animation.
type Clock struct {
	Step     time.Duration
	MaxDelta time.Duration

	now     func() time.Time
	last    time.Time
	started bool
}

// New returns a clock reading the wall time.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock reading time from now.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{Step: DefaultStep, MaxDelta: DefaultMaxDelta, now: now}
}

// Tick samples the time source. See TickAt.
func (c *Clock) Tick() (time.Duration, bool) {
	return c.TickAt(c.now())
}

// TickAt returns the delta to animate by at t. The first call only starts
// the clock and returns false.
func (c *Clock) TickAt(t time.Time) (time.Duration, bool) {
	if !c.started {
		c.started = true
		c.last = t
		return 0, false
	}
	elapsed := t.Sub(c.last)
	if elapsed <= c.Step {
		return 0, false
	}
	c.last = t
	if c.MaxDelta > 0 && elapsed > c.MaxDelta {
		elapsed = c.MaxDelta
	}
	return elapsed, true
}

// Reset makes the next tick start the clock again.
func (c *Clock) Reset() {
	c.started = false
}
