package slayin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

func TestLoopGatesTicks(t *testing.T) {
	s, clock, _ := newTestSession(t)
	l := NewLoop(s, clock, 10)

	if l.Advance() {
		t.Error("tick ran before one interval passed")
	}

	clock.Advance(0.1)
	if !l.Advance() {
		t.Fatal("tick should run after one interval")
	}
	if l.Advance() {
		t.Error("second tick ran without time passing")
	}

	// Late frames skip ticks instead of batching them
	clock.Advance(0.5)
	if !l.Advance() {
		t.Fatal("tick should run after a late frame")
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks = %d, expected 2", s.Ticks())
	}
}

func TestLoopRemaining(t *testing.T) {
	s, clock, _ := newTestSession(t)
	l := NewLoop(s, clock, 4)

	if got := l.Remaining(); got != 250*time.Millisecond {
		t.Errorf("Remaining = %v, expected 250ms", got)
	}
	clock.Advance(1)
	if got := l.Remaining(); got != 0 {
		t.Errorf("Remaining = %v, expected 0 when overdue", got)
	}
}

func TestLoopDefaultTickRate(t *testing.T) {
	s, clock, _ := newTestSession(t)
	l := NewLoop(s, clock, 0)

	clock.Advance(1.0 / 60)
	if !l.Advance() {
		t.Error("zero tick rate should fall back to 60 per second")
	}
}

type killHost struct {
	clock *ManualClock
	polls int
	ticks int
}

func (h *killHost) Poll(s *Session) core.InputFrame {
	h.polls++
	h.clock.Advance(0.25)
	if h.polls == 3 {
		s.Player.Health = 0
	}
	return core.NewInputFrame()
}

func (h *killHost) Present(*Session) {
	h.ticks++
}

func TestRunUntilOver(t *testing.T) {
	clock := &ManualClock{}
	rec := &Recorder{}
	s := NewSession(config.DefaultSlayinConfig(), clock, NewRand(1), rec)
	host := &killHost{clock: clock}

	if err := Run(context.Background(), NewLoop(s, clock, 10), host); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State() != StateOver {
		t.Errorf("State = %s, expected Over", s.State())
	}
	if host.ticks != 3 {
		t.Errorf("presented %d ticks, expected 3", host.ticks)
	}
	if rec.Count(EventSessionEnded) != 1 {
		t.Errorf("SessionEnded count = %d", rec.Count(EventSessionEnded))
	}
}

func TestRunCancelled(t *testing.T) {
	s, clock, rec := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, NewLoop(s, clock, 60), &Autopilot{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, expected context.Canceled", err)
	}
	if s.State() != StateOver || rec.Count(EventSessionEnded) != 1 {
		t.Errorf("state=%s ended=%d", s.State(), rec.Count(EventSessionEnded))
	}
}

func TestHeadlessRunsWithoutSleeping(t *testing.T) {
	s, clock, rec := newTestSession(t)
	s.Player.Health = 1_000_000
	l := NewLoop(s, clock, 60)
	host := NewHeadless(clock, 60, 10)

	var ticks int
	host.OnTick = func(*Session) { ticks++ }

	start := time.Now()
	if err := Run(context.Background(), l, host); err != nil {
		t.Fatalf("Run: %v", err)
	}
	wall := time.Since(start)

	if s.State() != StateOver || s.Elapsed() < 10 {
		t.Errorf("state=%v elapsed=%v, expected the 10s limit to end the session", s.State(), s.Elapsed())
	}
	if ticks < 600 || ticks > 601 || s.Ticks() != ticks {
		t.Errorf("ticks = %d (session %d), expected one per poll for 10s at 60Hz", ticks, s.Ticks())
	}
	if rec.Count(EventSessionEnded) != 1 {
		t.Errorf("SessionEnded fired %d times", rec.Count(EventSessionEnded))
	}
	if wall >= 2*time.Second {
		t.Errorf("10s of game time took %v of wall time", wall)
	}
}

func TestHeadlessDefaultsAndUnlimited(t *testing.T) {
	clock := &ManualClock{}
	h := NewHeadless(clock, 0, 0)
	if h.Interval != 1.0/60 || !h.FastForward() {
		t.Errorf("unexpected headless host %+v", h)
	}

	s := NewSession(config.DefaultSlayinConfig(), clock, NewRand(1), nil)
	for i := 0; i < 10; i++ {
		h.Poll(s)
		h.Present(s)
	}
	if s.State() != StateRunning {
		t.Error("a zero limit should never end the session")
	}
	if clock.Now() < 10.0/60-1e-9 {
		t.Errorf("clock at %v after 10 polls", clock.Now())
	}
}

func TestPausableClock(t *testing.T) {
	base := &ManualClock{}
	c := NewPausableClock(base)

	base.Advance(2)
	if c.Now() != 2 {
		t.Errorf("Now = %v, expected 2", c.Now())
	}

	c.Pause()
	c.Pause()
	base.Advance(5)
	if c.Now() != 2 || !c.Paused() {
		t.Errorf("paused clock moved to %v", c.Now())
	}

	c.Resume()
	c.Resume()
	base.Advance(1)
	if c.Now() != 3 || c.Paused() {
		t.Errorf("Now = %v after resume, expected 3", c.Now())
	}
}

func TestRecorderAndFanout(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	f := Fanout{a, nil, b}

	f.Hit(3)
	f.Healed(4)
	f.Slain(1)
	f.SessionEnded(12.5, 1)

	for _, r := range []*Recorder{a, b} {
		if len(r.Events) != 4 {
			t.Fatalf("recorded %d events, expected 4", len(r.Events))
		}
		last, ok := r.Last()
		if !ok || last.Kind != EventSessionEnded || last.Elapsed != 12.5 || last.Score != 1 {
			t.Errorf("last event %+v", last)
		}
		if r.Count(EventHit) != 1 || r.Events[0].Health != 3 {
			t.Errorf("hit event %+v", r.Events[0])
		}
	}

	if _, ok := (&Recorder{}).Last(); ok {
		t.Error("empty recorder should have no last event")
	}
}
