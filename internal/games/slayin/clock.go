package slayin

import "time"

// Clock is a monotonic time source in seconds.
// Spawn cadence and enemy direction changes are measured on it; invulnerability
// is not, it decays per tick.
type Clock interface {
	Now() float64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose zero is the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns seconds since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// PausableClock wraps another clock and stops time while paused, so a paused
// session resumes with its spawn and turn timers where they were.
type PausableClock struct {
	base     Clock
	paused   bool
	pausedAt float64
	offset   float64 // Total time spent paused
}

// NewPausableClock wraps base.
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns base time minus time spent paused.
func (c *PausableClock) Now() float64 {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.base.Now() - c.offset
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.base.Now()
}

// Resume restarts the clock. Resuming a running clock is a no-op.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.base.Now() - c.pausedAt
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	return c.paused
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	t float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.t
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.t += d
}
