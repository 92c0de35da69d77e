// Package gui runs the arena in a desktop window with Ebitengine.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-slayin/internal/core"
	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
)

// palette maps arena colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorBackground:  {222, 238, 214, 255},
	core.ColorGround:      {20, 18, 28, 255},
	core.ColorPlayer:      {210, 125, 44, 255},
	core.ColorPlayerHurt:  {208, 70, 72, 255},
	core.ColorWeapon:      {117, 113, 97, 255},
	core.ColorEnemy:       {89, 125, 206, 255},
	core.ColorFlyingEnemy: {109, 194, 202, 255},
	core.ColorPickup:      {109, 170, 44, 255},
}

var overlayColor = color.RGBA{0, 0, 0, 160}

// Window is an ebiten.Game driving one slayin game. Every Update advances
// game time by exactly one tick, so the window runs at the tick rate.
type Window struct {
	game    *slayin.Game
	runtime core.RuntimeConfig
	clock   *slayin.ManualClock
	step    float64
	width   int
	height  int

	// OnGameOver, if set, is called once per finished session.
	OnGameOver func(core.GameState)
	reported   bool
}

// NewWindow prepares game for windowed play. It takes over the game's clock.
func NewWindow(game *slayin.Game, runtime core.RuntimeConfig) *Window {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	clock := &slayin.ManualClock{}
	game.UseClock(func() slayin.Clock { return clock })
	game.Reset(runtime)

	arena := game.Session().Config().Arena
	return &Window{
		game:    game,
		runtime: runtime,
		clock:   clock,
		step:    1 / float64(runtime.TickRate),
		width:   int(arena.Width),
		height:  int(arena.Height),
	}
}

// Input samples the keyboard for one frame.
func Input() core.InputFrame {
	in := core.NewInputFrame()
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	if pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if pressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if pressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if pressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if pressed(ebiten.KeyEscape, ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	return w.Apply(Input())
}

// Apply feeds one frame of input: advances game time by one tick, steps the
// game and reports a finished session. Quit returns ebiten.Termination.
func (w *Window) Apply(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		w.game.Step(in)
		w.report()
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) {
		w.game.Step(quitFrame())
		w.report()
		w.runtime.Seed = 0
		w.game.Reset(w.runtime)
		w.reported = false
		return nil
	}

	w.clock.Advance(w.step)
	res := w.game.Step(in)
	if res.State.GameOver {
		w.report()
	}
	return nil
}

func quitFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	return in
}

func (w *Window) report() {
	if w.reported {
		return
	}
	w.reported = true
	if w.OnGameOver != nil {
		w.OnGameOver(w.game.State())
	}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(palette[core.ColorBackground])
	w.game.Draw(imageRenderer{screen})

	ebitenutil.DebugPrintAt(screen, w.game.HUD(), 8, 4)
	if msg := w.game.LastMessage(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, w.width-8-6*len(msg), 4)
	}

	state := w.game.State()
	switch {
	case state.GameOver:
		w.drawOverlay(screen, "GAME OVER", w.game.Summary(), "R restart, Esc quit")
	case state.Paused:
		w.drawOverlay(screen, "PAUSED", "P to resume")
	}
}

func (w *Window) drawOverlay(screen *ebiten.Image, lines ...string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(w.width), float64(w.height), overlayColor)
	y := w.height/2 - 8*len(lines)
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (w.width-6*len(line))/2, y)
		y += 16
	}
}

// Layout implements ebiten.Game. The arena is drawn at its native size and
// scaled by ebiten to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Size returns the logical screen size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// imageRenderer draws arena rectangles straight onto an ebiten image.
type imageRenderer struct {
	dst *ebiten.Image
}

func (r imageRenderer) DrawRect(box core.Box, c core.Color) {
	clr, ok := palette[c]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	ebitenutil.DrawRect(r.dst, box.X, box.Y, box.W, box.H, clr)
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, scale int) error {
	if scale <= 0 {
		scale = 2
	}
	ebiten.SetWindowSize(w.width*scale, w.height*scale)
	ebiten.SetWindowTitle("Slayin")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.runtime.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
