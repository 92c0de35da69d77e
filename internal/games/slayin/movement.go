package slayin

import (
	"math"

	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

// descendStep is how far a diving flying enemy drops per tick.
const descendStep = 1

// walk moves a body speed units in dir while it is not already at the wall it
// walks toward, then clamps it inside [0, width-W].
func walk(b *core.Box, dir int, speed, width float64) {
	if (dir < 0 && b.X > 0) || (dir > 0 && b.Right() < width) {
		b.X += speed * float64(dir)
	}
	b.X = core.ClampF(b.X, 0, width-b.W)
}

// Jump starts a jump if the player's feet are exactly on the ground top.
// The check is an exact float comparison; landing always snaps to the rest
// line, so a grounded player compares equal.
func (p *Player) Jump(arena config.ArenaConfig) bool {
	if p.Bottom() != arena.GroundTop {
		return false
	}
	p.JumpDirection = -1
	return true
}

// Grounded reports whether the player is standing on the ground.
func (p *Player) Grounded(arena config.ArenaConfig) bool {
	return p.Bottom() == arena.GroundTop
}

// Move advances the player one tick: walk, jump arc, landing, weapon follow.
func (p *Player) Move(arena config.ArenaConfig) {
	walk(&p.Box, p.Direction, p.tuning.Speed, arena.Width)

	p.Y += p.tuning.JumpSpeed * float64(p.JumpDirection) * p.Gravity
	if p.JumpDirection < 0 {
		p.Gravity *= 1 - p.tuning.GravityRate
	} else {
		p.Gravity *= 1 + p.tuning.GravityRate
	}
	if p.Gravity <= p.tuning.ApexGravity {
		p.JumpDirection = -p.JumpDirection
	}

	if rest := arena.GroundTop - p.H; p.Y >= rest {
		p.Y = rest
		p.JumpDirection = 0
		p.Gravity = p.tuning.GroundGravity
	}

	p.syncWeapon()
}

// DecayInvulnerability removes one tick of invulnerability.
// It stops at exactly zero.
func (p *Player) DecayInvulnerability() {
	if p.Invulnerable > p.tuning.InvulnDecay {
		p.Invulnerable -= p.tuning.InvulnDecay
	} else {
		p.Invulnerable = 0
	}
}

// Move advances the enemy one tick according to its variant.
func (e *Enemy) Move(now float64, arena config.ArenaConfig, rng Rand) {
	e.behavior.move(e, now, arena, rng)
}

// turn samples a new direction once TurnInterval seconds have passed since
// the previous change. It reports whether a change happened.
func (e *Enemy) turn(now float64, rng Rand) bool {
	if now-e.LastTurn < e.TurnInterval {
		return false
	}
	e.Direction = sampleDirection(rng)
	e.LastTurn = now
	return true
}

func (g groundBehavior) move(e *Enemy, now float64, arena config.ArenaConfig, rng Rand) {
	if rest := arena.GroundTop - e.H; e.Y > rest {
		e.Y = math.Max(rest, e.Y-g.riseSpeed)
	}
	e.turn(now, rng)
	walk(&e.Box, e.Direction, e.Speed, arena.Width)
}

func (f *Flight) move(e *Enemy, now float64, arena config.ArenaConfig, rng Rand) {
	if e.Y < f.cfg.EntryLine {
		e.Y += f.cfg.EntrySpeed
		f.DescendRemaining = 0
		f.DescendCycles = 0
		e.TurnInterval = f.cfg.TurnInterval
	}

	if e.turn(now, rng) {
		f.DescendCycles++
		if f.DescendCycles >= f.cfg.DescendEvery {
			f.DescendCycles = 0
			f.DescendRemaining = f.cfg.DescendBudget
		}
	}

	if f.DescendRemaining > 0 && e.Y < arena.GroundTop-e.H {
		e.Y += descendStep
		f.DescendRemaining--
	}

	walk(&e.Box, e.Direction, e.Speed, arena.Width)
}

// Move lets the pickup fall until it rests on the ground.
func (p *Pickup) Move(arena config.ArenaConfig) {
	if rest := arena.GroundTop - p.H; p.Y < rest {
		p.Y = math.Min(rest, p.Y+p.fallSpeed)
	}
}
