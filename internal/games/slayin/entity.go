package slayin

import (
	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

// Kind is the closed set of entity variants in the arena.
// The order matters: Resolve sorts a pair by Kind before dispatching.
type Kind int

const (
	KindPlayer Kind = iota
	KindWeapon
	KindGroundEnemy
	KindFlyingEnemy
	KindPickup
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindWeapon:
		return "Weapon"
	case KindGroundEnemy:
		return "GroundEnemy"
	case KindFlyingEnemy:
		return "FlyingEnemy"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// IsEnemy reports whether the kind is one of the enemy variants.
func (k Kind) IsEnemy() bool {
	return k == KindGroundEnemy || k == KindFlyingEnemy
}

// Collider is anything that takes part in collision resolution.
type Collider interface {
	Kind() Kind
	Bounds() core.Box
}

// Player is the character controlled by the user.
type Player struct {
	core.Box
	Direction     int     // Facing and walking direction: -1 left, 0 idle, 1 right
	JumpDirection int     // -1 rising, 1 falling, 0 standing
	Gravity       float64 // Vertical speed factor
	Health        int
	Invulnerable  float64 // Remaining invulnerability, decays per tick
	Weapon        Weapon

	tuning config.PlayerConfig
	grip   config.WeaponConfig
}

// NewPlayer places a player at its configured start with the weapon attached.
func NewPlayer(pc config.PlayerConfig, wc config.WeaponConfig) *Player {
	p := &Player{
		Box:     core.NewBox(pc.X, pc.Y, pc.Width, pc.Height),
		Gravity: pc.GroundGravity,
		Health:  pc.Health,
		Weapon:  Weapon{Box: core.NewBox(0, 0, wc.Width, wc.Height)},
		tuning:  pc,
		grip:    wc,
	}
	p.syncWeapon()
	return p
}

func (p *Player) Kind() Kind       { return KindPlayer }
func (p *Player) Bounds() core.Box { return p.Box }

// syncWeapon puts the weapon on the facing side: right of the player when
// facing right, left of it otherwise.
func (p *Player) syncWeapon() {
	if p.Direction > 0 {
		p.Weapon.X = p.Right()
	} else {
		p.Weapon.X = p.X - p.Weapon.W
	}
	p.Weapon.Y = p.Y + p.grip.OffsetY
}

// Weapon is the sword carried by the player. It has no health or lifecycle
// of its own.
type Weapon struct {
	core.Box
}

func (w *Weapon) Kind() Kind       { return KindWeapon }
func (w *Weapon) Bounds() core.Box { return w.Box }

// Enemy is a ground or flying enemy. Shared fields live here; the movement
// rules and any variant-only state live in the behavior.
type Enemy struct {
	core.Box
	Health       int
	Direction    int
	LastTurn     float64 // Clock time of the last direction change
	TurnInterval float64 // Seconds between direction changes
	Speed        float64 // Horizontal units per tick

	behavior enemyBehavior
}

// enemyBehavior is the per-variant movement strategy.
type enemyBehavior interface {
	kind() Kind
	move(e *Enemy, now float64, arena config.ArenaConfig, rng Rand)
}

// NewGroundEnemy creates an enemy that climbs out of the ground at column x.
func NewGroundEnemy(gc config.GroundEnemyConfig, arena config.ArenaConfig, x, now float64) *Enemy {
	return &Enemy{
		Box:          core.NewBox(x, arena.Height, gc.Width, gc.Height),
		Health:       gc.Health,
		LastTurn:     now,
		TurnInterval: gc.TurnInterval,
		Speed:        gc.Speed,
		behavior:     groundBehavior{riseSpeed: gc.RiseSpeed},
	}
}

// NewFlyingEnemy creates an enemy that drops in from above the arena at column x.
func NewFlyingEnemy(fc config.FlyingEnemyConfig, x, now float64) *Enemy {
	return &Enemy{
		Box:          core.NewBox(x, -fc.Height, fc.Width, fc.Height),
		Health:       fc.Health,
		LastTurn:     now,
		TurnInterval: fc.TurnInterval,
		Speed:        fc.Speed,
		behavior:     &Flight{cfg: fc},
	}
}

func (e *Enemy) Kind() Kind       { return e.behavior.kind() }
func (e *Enemy) Bounds() core.Box { return e.Box }

// Flight returns the descent state of a flying enemy, or nil for ground enemies.
func (e *Enemy) Flight() *Flight {
	f, _ := e.behavior.(*Flight)
	return f
}

type groundBehavior struct {
	riseSpeed float64
}

func (groundBehavior) kind() Kind { return KindGroundEnemy }

// Flight is the flying-enemy behavior and its descent bookkeeping.
type Flight struct {
	DescendRemaining int // Units still to descend in the current dive
	DescendCycles    int // Direction changes since the last dive

	cfg config.FlyingEnemyConfig
}

func (*Flight) kind() Kind { return KindFlyingEnemy }

// Pickup is a falling health pickup. Health doubles as the consumed flag:
// 1 while active, 0 once collected.
type Pickup struct {
	core.Box
	Health int

	heal      int
	fallSpeed float64
}

// NewPickup creates a pickup just above the arena at column x.
func NewPickup(pc config.PickupConfig, x float64) *Pickup {
	return &Pickup{
		Box:       core.NewBox(x, -pc.Height, pc.Width, pc.Height),
		Health:    1,
		heal:      pc.Heal,
		fallSpeed: pc.FallSpeed,
	}
}

func (p *Pickup) Kind() Kind       { return KindPickup }
func (p *Pickup) Bounds() core.Box { return p.Box }
