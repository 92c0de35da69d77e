package slayin

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "slayin"

// hudRows is the number of terminal rows reserved above the arena.
const hudRows = 1

// Game adapts a Session to the registry.Game host contract.
type Game struct {
	cfg      config.SlayinConfig
	runtime  core.RuntimeConfig
	clock    *PausableClock
	session  *Session
	loop     *Loop
	recorder *Recorder
	sink     EventSink // External sink, kept across resets
	newClock func() Clock
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config as is.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{newClock: func() Clock { return NewSystemClock() }}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slayin"
}

// UseClock replaces the time source for sessions started from now on.
// Hosts with their own fixed frame rate use it to step game time per frame.
func (g *Game) UseClock(newClock func() Clock) {
	g.newClock = newClock
}

// SetEventSink attaches an external notification sink (log, sound). It
// applies from the next Reset on.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// Reset discards the current session and starts a new one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		reportConfigError(g.sink, fmt.Errorf("slayin: using default config: %w", err))
		cfg = config.DefaultSlayinConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = NewPausableClock(g.newClock())
	g.recorder = &Recorder{}
	g.session = NewSession(cfg, g.clock, NewRand(runtime.Seed), Fanout{g.recorder, g.sink})
	g.loop = NewLoop(g.session, g.clock, runtime.TickRate)
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies one host frame of input and runs a tick if one is due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.session.End()
	}
	if g.session.State() == StateOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.clock.Paused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	}
	if g.clock.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.session.Input(in)
	ticked := g.loop.Advance()
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// Draw renders the arena through any renderer.
func (g *Game) Draw(r Renderer) {
	g.session.Draw(r)
}

// Render draws the arena and HUD onto a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.session.Draw(NewScreenRenderer(dst, g.cfg.Arena, hudRows))

	dst.DrawText(1, 0, g.HUD())
	if msg := g.LastMessage(); msg != "" {
		dst.DrawText(dst.Width()-len([]rune(msg))-1, 0, msg)
	}

	switch {
	case g.session.State() == StateOver:
		drawCenteredMessage(dst, "GAME OVER", g.Summary()+"  |  R restart, Q quit")
	case g.clock.Paused():
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// HUD returns the status line: health, score and current spawn interval.
func (g *Game) HUD() string {
	s := g.session
	return fmt.Sprintf("HP %d  Score %d  Spawn %.2fs  %s",
		s.Player.Health, s.Score, s.SpawnInterval, formatElapsed(s.Elapsed()))
}

// Summary describes a finished session.
func (g *Game) Summary() string {
	return fmt.Sprintf("%s survived, %d slain", formatElapsed(g.session.Elapsed()), g.session.Score)
}

// LastMessage formats the most recent notification for display.
func (g *Game) LastMessage() string {
	e, ok := g.recorder.Last()
	if !ok {
		return ""
	}
	switch e.Kind {
	case EventHit:
		return fmt.Sprintf("Hit! %d HP left", e.Health)
	case EventHealed:
		return fmt.Sprintf("Medkit! %d HP", e.Health)
	case EventSlain:
		return fmt.Sprintf("Slain! Score %d", e.Score)
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score,
		Health:   s.Player.Health,
		Elapsed:  time.Duration(s.Elapsed() * float64(time.Second)),
		GameOver: s.State() == StateOver,
		Paused:   g.clock.Paused(),
	}
}

func formatElapsed(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: "Slayin"}, func() registry.Game {
		return New()
	})
}
