package slayin

import (
	"testing"

	"github.com/vovakirdan/tui-slayin/internal/config"
)

// scriptedRand returns its values in order, wrapping around. Values at or
// above n are clamped to n-1.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	if v >= n {
		v = n - 1
	}
	return v
}

// newTestSession returns a session on a manual clock at t=0 with a seeded RNG.
func newTestSession(t *testing.T) (*Session, *ManualClock, *Recorder) {
	t.Helper()
	clock := &ManualClock{}
	rec := &Recorder{}
	s := NewSession(config.DefaultSlayinConfig(), clock, NewRand(1), rec)
	return s, clock, rec
}

func testArena() config.ArenaConfig {
	return config.DefaultSlayinConfig().Arena
}
