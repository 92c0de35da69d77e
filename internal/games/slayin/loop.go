package slayin

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-slayin/internal/core"
)

// gateSlack absorbs float rounding when a clock advances in exact tick steps.
const gateSlack = 1e-9

// Loop gates session ticks on a clock. A tick runs only when at least one
// tick interval has passed since the previous one; late frames skip ticks,
// they never run several to catch up.
type Loop struct {
	session  *Session
	clock    Clock
	interval float64
	last     float64
}

// NewLoop creates a gate for the session at tickRate ticks per second.
func NewLoop(session *Session, clock Clock, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		session:  session,
		clock:    clock,
		interval: 1 / float64(tickRate),
		last:     clock.Now(),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Advance runs one tick if it is due. It reports whether a tick ran.
func (l *Loop) Advance() bool {
	now := l.clock.Now()
	if now-l.last < l.interval-gateSlack {
		return false
	}
	l.last = now
	return l.session.Tick()
}

// Remaining returns how long until the next tick is due.
func (l *Loop) Remaining() time.Duration {
	left := l.interval - (l.clock.Now() - l.last)
	if left <= 0 {
		return 0
	}
	return time.Duration(left * float64(time.Second))
}

// Host is a headless driver's view of the outside world.
type Host interface {
	// Poll samples input once per loop iteration.
	Poll(s *Session) core.InputFrame
	// Present is called after every tick that ran.
	Present(s *Session)
}

// FastForwarder is a Host that advances the loop's clock itself. Run never
// sleeps for a host whose FastForward reports true.
type FastForwarder interface {
	FastForward() bool
}

// Run drives the loop until the session is over or ctx is cancelled, sleeping
// between ticks unless the host fast-forwards. Cancellation ends the session
// so SessionEnded still fires.
func Run(ctx context.Context, l *Loop, host Host) error {
	s := l.session
	for s.State() == StateRunning {
		select {
		case <-ctx.Done():
			s.End()
			return ctx.Err()
		default:
		}

		s.Input(host.Poll(s))
		if l.Advance() {
			host.Present(s)
		}
		if ff, ok := host.(FastForwarder); ok && ff.FastForward() {
			continue
		}

		if wait := l.Remaining(); wait > 0 && s.State() == StateRunning {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.End()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil
}
