package slayin

import (
	"math"

	"github.com/vovakirdan/tui-slayin/internal/core"
)

// Autopilot is a simple bot Host for headless runs. It walks toward the
// nearest enemy so the sword faces it, and jumps when a flying enemy hovers
// overhead.
type Autopilot struct {
	// OnTick, if set, is called after every tick.
	OnTick func(s *Session)
}

// Poll picks the bot's input for this frame.
func (a *Autopilot) Poll(s *Session) core.InputFrame {
	in := core.NewInputFrame()
	p := s.Player
	cx := p.X + p.W/2

	var target *Enemy
	best := math.Inf(1)
	for _, e := range s.Enemies {
		d := math.Abs(e.X + e.W/2 - cx)
		if d < best {
			best, target = d, e
		}
	}
	if target == nil {
		return in
	}

	if target.X+target.W/2 < cx {
		in.Set(core.ActionLeft)
	} else {
		in.Set(core.ActionRight)
	}
	if target.Kind() == KindFlyingEnemy && best < p.W && target.Bottom() < p.Y {
		in.Set(core.ActionJump)
	}
	return in
}

// Present forwards to OnTick.
func (a *Autopilot) Present(s *Session) {
	if a.OnTick != nil {
		a.OnTick(s)
	}
}

// Headless runs an Autopilot on a ManualClock without waiting: every poll
// moves the clock one tick interval forward. The session ends after Limit
// seconds of game time, or never when Limit is 0.
type Headless struct {
	Autopilot
	Clock    *ManualClock
	Interval float64
	Limit    float64
}

// NewHeadless returns a headless host stepping clock at tickRate.
func NewHeadless(clock *ManualClock, tickRate int, limit float64) *Headless {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Headless{Clock: clock, Interval: 1 / float64(tickRate), Limit: limit}
}

// Poll advances the clock, then lets the autopilot pick input.
func (h *Headless) Poll(s *Session) core.InputFrame {
	h.Clock.Advance(h.Interval)
	return h.Autopilot.Poll(s)
}

// Present forwards to the autopilot and enforces the time limit.
func (h *Headless) Present(s *Session) {
	h.Autopilot.Present(s)
	if h.Limit > 0 && s.Elapsed() >= h.Limit {
		s.End()
	}
}

// FastForward is always true; the clock only moves when polled.
func (h *Headless) FastForward() bool { return true }
