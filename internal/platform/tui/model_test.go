package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/storage"
)

// stubGame ends when it receives ActionQuit or when over is set.
type stubGame struct {
	resets int
	steps  []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Health: 10}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	copied := core.NewInputFrame()
	for a := range in.Actions {
		copied.Set(a)
	}
	g.steps = append(g.steps, copied)
	if in.Has(core.ActionQuit) {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, Ticked: true}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub arena")
}

func (g *stubGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T) (Model, *stubGame, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &stubGame{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{Store: store, Player: "tester"})
	m.Init()
	return m, game, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelBuffersInputUntilTick(t *testing.T) {
	m, game, _ := newTestModel(t)

	next, _ := m.Update(runes("d"))
	next, _ = next.Update(runes("w"))
	if len(game.steps) != 0 {
		t.Fatal("keys should not step the game")
	}

	next, cmd := next.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	if len(game.steps) != 1 {
		t.Fatalf("steps = %d, expected 1", len(game.steps))
	}
	in := game.steps[0]
	if !in.Has(core.ActionRight) || !in.Has(core.ActionJump) {
		t.Errorf("buffered input %+v", in.Actions)
	}

	next.Update(TickMsg(time.Now()))
	if !game.steps[1].Empty() {
		t.Error("input should be cleared after each frame")
	}
}

func TestModelQuitEndsAndSavesOnce(t *testing.T) {
	m, game, store := newTestModel(t)
	game.state.Score = 7
	game.state.Elapsed = 3 * time.Second

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if len(game.steps) != 1 || !game.steps[0].Has(core.ActionQuit) {
		t.Fatal("quit should end the running session first")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 7 || runs[0].Player != "tester" || runs[0].Duration != 3*time.Second {
		t.Errorf("saved runs %+v", runs)
	}
}

func TestModelGameOverSavesOnce(t *testing.T) {
	m, game, store := newTestModel(t)

	var next tea.Model = m
	game.state.GameOver = true
	game.state.Score = 2
	for i := 0; i < 5; i++ {
		next, _ = next.Update(TickMsg(time.Now()))
	}
	next.Update(runes("q"))

	runs, _ := store.TopRuns("stub", 10)
	if len(runs) != 1 {
		t.Errorf("saved %d runs, expected 1", len(runs))
	}
}

func TestModelRestart(t *testing.T) {
	m, game, store := newTestModel(t)

	next, _ := m.Update(runes("r"))
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if next.(Model).State().GameOver {
		t.Error("restart should leave a running session")
	}

	// The abandoned session is recorded; the new one is saved separately
	next.Update(runes("q"))
	runs, _ := store.TopRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs, expected 2", len(runs))
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	view := next.View()
	if !strings.Contains(view, "stub arena") {
		t.Errorf("view missing arena:\n%s", view)
	}
	if !strings.Contains(view, "jump") {
		t.Errorf("view missing help footer:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, expected 12", lines)
	}
}
