package gui

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
)

func newTestWindow() *Window {
	return NewWindow(slayin.New(), core.RuntimeConfig{TickRate: 60, Seed: 1})
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestWindowTicksOncePerFrame(t *testing.T) {
	w := newTestWindow()

	for i := 0; i < 120; i++ {
		if err := w.Apply(frame()); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	s := w.game.Session()
	if s.Ticks() != 120 {
		t.Errorf("Ticks = %d, expected one per frame", s.Ticks())
	}
	if got := s.Elapsed(); math.Abs(got-2) > 1e-6 {
		t.Errorf("Elapsed = %v, expected 2s of game time", got)
	}
	if width, height := w.Layout(1280, 720); width != 640 || height != 320 {
		t.Errorf("Layout = %dx%d", width, height)
	}
}

func TestWindowQuitReportsOnce(t *testing.T) {
	w := newTestWindow()
	var reports []core.GameState
	w.OnGameOver = func(st core.GameState) { reports = append(reports, st) }

	w.Apply(frame(core.ActionRight))
	err := w.Apply(frame(core.ActionQuit))
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, expected ebiten.Termination", err)
	}
	w.Apply(frame(core.ActionQuit))

	if len(reports) != 1 || !reports[0].GameOver {
		t.Errorf("reports = %+v, expected a single game over", reports)
	}
}

func TestWindowRestart(t *testing.T) {
	w := newTestWindow()
	reports := 0
	w.OnGameOver = func(core.GameState) { reports++ }

	for i := 0; i < 10; i++ {
		w.Apply(frame())
	}
	first := w.game.Session()

	if err := w.Apply(frame(core.ActionRestart)); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if w.game.Session() == first {
		t.Error("restart should start a new session")
	}
	if reports != 1 {
		t.Errorf("abandoned session reported %d times", reports)
	}

	w.Apply(frame())
	if w.game.Session().Ticks() != 1 || w.game.State().GameOver {
		t.Errorf("new session ticks=%d over=%v", w.game.Session().Ticks(), w.game.State().GameOver)
	}
}

func TestToneSinkSilentWithoutInit(t *testing.T) {
	sink := NewToneSink()
	// Must not block or panic without an audio device
	sink.Hit(9)
	sink.Healed(10)
	sink.Slain(1)
	sink.SessionEnded(1, 1)
	sink.Close()
}

func TestToneStreamFadesOut(t *testing.T) {
	g := newTone(sampleRate, 440, 0)
	buf := make([][2]float64, 64)
	n, ok := g.Stream(buf)
	if n != 64 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := 1; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v after the fade ended", i, buf[i][0])
		}
	}
	if g.Err() != nil {
		t.Error("unexpected error")
	}
}
