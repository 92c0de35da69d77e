package slayin

import (
	"math"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

// Renderer draws filled rectangles in arena coordinates.
type Renderer interface {
	DrawRect(box core.Box, color core.Color)
}

// Draw renders the ground and every live entity, back to front.
func (s *Session) Draw(r Renderer) {
	a := s.cfg.Arena
	r.DrawRect(core.NewBox(0, a.GroundTop, a.Width, a.GroundHeight()), core.ColorGround)

	for _, pk := range s.Pickups {
		pk.Draw(r)
	}
	for _, e := range s.Enemies {
		e.Draw(r)
	}
	s.Player.Draw(r)
}

// Draw renders the player and the weapon.
func (p *Player) Draw(r Renderer) {
	color := core.ColorPlayer
	if p.Invulnerable > 0 {
		color = core.ColorPlayerHurt
	}
	r.DrawRect(p.Box, color)
	r.DrawRect(p.Weapon.Box, core.ColorWeapon)
}

// Draw renders the enemy.
func (e *Enemy) Draw(r Renderer) {
	if e.Kind() == KindFlyingEnemy {
		r.DrawRect(e.Box, core.ColorFlyingEnemy)
		return
	}
	r.DrawRect(e.Box, core.ColorEnemy)
}

// Draw renders the pickup.
func (p *Pickup) Draw(r Renderer) {
	r.DrawRect(p.Box, core.ColorPickup)
}

// glyphs maps palette colors to the rune used on a terminal.
var glyphs = map[core.Color]rune{
	core.ColorGround:      '▓',
	core.ColorPlayer:      '█',
	core.ColorPlayerHurt:  '▒',
	core.ColorWeapon:      '━',
	core.ColorEnemy:       '█',
	core.ColorFlyingEnemy: '▀',
	core.ColorPickup:      '+',
}

// ScreenRenderer scales the arena onto a terminal screen, below an optional
// band of HUD rows.
type ScreenRenderer struct {
	dst    *core.Screen
	arena  config.ArenaConfig
	top    int
	scaleX float64
	scaleY float64
}

// NewScreenRenderer maps the arena onto dst, leaving hudRows rows at the top.
func NewScreenRenderer(dst *core.Screen, arena config.ArenaConfig, hudRows int) *ScreenRenderer {
	rows := max(dst.Height()-hudRows, 1)
	return &ScreenRenderer{
		dst:    dst,
		arena:  arena,
		top:    hudRows,
		scaleX: float64(dst.Width()) / arena.Width,
		scaleY: float64(rows) / arena.Height,
	}
}

// DrawRect fills every cell the box covers. Anything that is on screen
// covers at least one cell.
func (r *ScreenRenderer) DrawRect(box core.Box, color core.Color) {
	x0 := int(math.Floor(box.X * r.scaleX))
	x1 := max(int(math.Ceil(box.Right()*r.scaleX)), x0+1)
	y0 := int(math.Floor(box.Y * r.scaleY))
	y1 := max(int(math.Ceil(box.Bottom()*r.scaleY)), y0+1)
	// Bodies above the arena must not bleed into the HUD rows.
	y0 = max(y0, 0)
	if y1 <= y0 {
		return
	}

	glyph, ok := glyphs[color]
	if !ok {
		glyph = '#'
	}
	r.dst.FillRect(core.NewRect(x0, y0+r.top, x1-x0, y1-y0), glyph, color)
}
