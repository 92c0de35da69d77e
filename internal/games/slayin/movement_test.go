package slayin

import (
	"testing"

	"github.com/vovakirdan/tui-slayin/internal/config"
)

func TestPlayerWalk(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena

	tests := []struct {
		name      string
		x         float64
		direction int
		expected  float64
	}{
		{"walk right", 300, 1, 303},
		{"walk left", 300, -1, 297},
		{"idle", 300, 0, 300},
		{"right wall clamps", 599, 1, 600},
		{"left wall clamps", 1, -1, 0},
		{"at left wall", 0, -1, 0},
		{"at right wall", 600, 1, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(cfg.Player, cfg.Weapon)
			p.X = tc.x
			p.Direction = tc.direction
			p.Move(arena)
			if p.X != tc.expected {
				t.Errorf("X = %v, expected %v", p.X, tc.expected)
			}
		})
	}
}

func TestWeaponFollowsFacing(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	p := NewPlayer(cfg.Player, cfg.Weapon)

	// Idle players hold the weapon on the left
	if p.Weapon.X != p.X-p.Weapon.W || p.Weapon.Y != p.Y+10 {
		t.Errorf("idle weapon at (%v, %v), expected left side", p.Weapon.X, p.Weapon.Y)
	}

	p.Direction = 1
	p.Move(cfg.Arena)
	if p.Weapon.X != p.Right() {
		t.Errorf("weapon X = %v, expected right edge %v", p.Weapon.X, p.Right())
	}

	p.Direction = -1
	p.Move(cfg.Arena)
	if p.Weapon.Right() != p.X {
		t.Errorf("weapon right edge = %v, expected player left edge %v", p.Weapon.Right(), p.X)
	}
	if p.Weapon.W != 40 || p.Weapon.H != 15 {
		t.Errorf("weapon size changed to %vx%v", p.Weapon.W, p.Weapon.H)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	p := NewPlayer(cfg.Player, cfg.Weapon)

	if !p.Jump(arena) {
		t.Fatal("grounded player should be able to jump")
	}

	p.Move(arena)
	if p.Y != 170 {
		t.Errorf("first tick Y = %v, expected 170", p.Y)
	}
	if p.Gravity >= 2 {
		t.Errorf("gravity should decay while rising, got %v", p.Gravity)
	}

	top := p.Y
	sawDescent := false
	landed := false
	for i := 0; i < 60; i++ {
		p.Move(arena)
		if p.Y < top {
			top = p.Y
		}
		if p.JumpDirection > 0 {
			sawDescent = true
		}
		if p.JumpDirection == 0 {
			landed = true
			break
		}
	}

	if !sawDescent {
		t.Error("jump never reached its apex")
	}
	if !landed {
		t.Fatal("player never landed")
	}
	if p.Y != 200 || p.Gravity != 2 {
		t.Errorf("landing should snap to Y=200 gravity=2, got Y=%v gravity=%v", p.Y, p.Gravity)
	}
	if top > 100 {
		t.Errorf("apex Y = %v, expected a jump above 100", top)
	}
}

func TestJumpRequiresExactGround(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	p := NewPlayer(cfg.Player, cfg.Weapon)

	p.Y = 150
	if p.Jump(arena) {
		t.Error("airborne player should not jump")
	}

	p.Y = 200.0001
	if p.Jump(arena) {
		t.Error("jump uses exact equality with the ground top")
	}
	if p.JumpDirection != 0 {
		t.Errorf("rejected jump changed JumpDirection to %d", p.JumpDirection)
	}
}

func TestRestLinesFollowGroundTop(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	arena.GroundTop = 260

	p := NewPlayer(cfg.Player, cfg.Weapon)
	p.Y = 220
	if !p.Jump(arena) {
		t.Fatal("player standing on the raised ground should jump")
	}
	for i := 0; i < 120 && (i == 0 || p.JumpDirection != 0); i++ {
		p.Move(arena)
	}
	if p.Y != 220 || p.JumpDirection != 0 {
		t.Errorf("player landed at Y=%v dir=%d, expected 220", p.Y, p.JumpDirection)
	}
	if !p.Grounded(arena) {
		t.Error("landed player should be grounded")
	}

	e := NewGroundEnemy(cfg.GroundEnemy, arena, 100, 0)
	for i := 0; i < 200; i++ {
		e.Move(0, arena, &scriptedRand{values: []int{1}})
	}
	if e.Y != 220 {
		t.Errorf("ground enemy rests at %v, expected 220", e.Y)
	}

	pk := NewPickup(cfg.Pickup, 100)
	for i := 0; i < 200; i++ {
		pk.Move(arena)
	}
	if pk.Y != 240 {
		t.Errorf("pickup rests at %v, expected 240", pk.Y)
	}
}

func TestInvulnerabilityDecay(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	p := NewPlayer(cfg.Player, cfg.Weapon)

	p.Invulnerable = 0.5
	for i := 0; i < 40; i++ {
		p.DecayInvulnerability()
		if p.Invulnerable <= 0 {
			t.Fatalf("invulnerability ran out after %d ticks", i+1)
		}
	}
	for i := 0; i < 20; i++ {
		p.DecayInvulnerability()
		if p.Invulnerable < 0 {
			t.Fatalf("invulnerability went negative: %v", p.Invulnerable)
		}
	}
	if p.Invulnerable != 0 {
		t.Errorf("Invulnerable = %v, expected exactly 0", p.Invulnerable)
	}

	p.Invulnerable = 0.015
	p.DecayInvulnerability()
	p.DecayInvulnerability()
	if p.Invulnerable != 0 {
		t.Errorf("small remainder should snap to 0, got %v", p.Invulnerable)
	}
}

func TestGroundEnemyRisesAndWanders(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	rng := &scriptedRand{values: []int{2}} // direction +1
	e := NewGroundEnemy(cfg.GroundEnemy, arena, 100, 0)

	if e.Y != 320 || e.Kind() != KindGroundEnemy || e.Flight() != nil {
		t.Fatalf("unexpected new ground enemy %+v", e)
	}

	for i := 0; i < 120; i++ {
		e.Move(0, arena, rng)
	}
	if e.Y != 200 {
		t.Errorf("Y after emerging = %v, expected 200", e.Y)
	}
	e.Move(0, arena, rng)
	if e.Y != 200 {
		t.Errorf("enemy should rest at 200, got %v", e.Y)
	}
	if e.X != 100 || e.Direction != 0 {
		t.Errorf("enemy should not wander before the turn interval, X=%v dir=%d", e.X, e.Direction)
	}

	e.Move(1.5, arena, rng)
	if e.Direction != 1 {
		t.Fatalf("Direction = %d, expected 1 after 1.5s", e.Direction)
	}
	if e.X != 100.5 {
		t.Errorf("X = %v, expected 100.5", e.X)
	}
	if e.LastTurn != 1.5 {
		t.Errorf("LastTurn = %v, expected 1.5", e.LastTurn)
	}
}

func TestEnemyDirectionStaysInRange(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	rng := NewRand(7)
	e := NewGroundEnemy(cfg.GroundEnemy, arena, 300, 0)

	now := 0.0
	for i := 0; i < 5000; i++ {
		now += 0.5
		prevX := e.X
		e.Move(now, arena, rng)
		if e.Direction < -1 || e.Direction > 1 {
			t.Fatalf("Direction = %d out of range", e.Direction)
		}
		if d := e.X - prevX; d > 0.5 || d < -0.5 {
			t.Fatalf("enemy moved %v in one tick", d)
		}
		if e.X < 0 || e.Right() > arena.Width {
			t.Fatalf("enemy left the arena: X=%v", e.X)
		}
	}
}

func TestFlyingEnemyEntryAndDive(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	rng := &scriptedRand{values: []int{1}} // direction 0
	e := NewFlyingEnemy(cfg.FlyingEnemy, 300, 0)

	if e.Y != -40 || e.Kind() != KindFlyingEnemy {
		t.Fatalf("unexpected new flying enemy %+v", e)
	}
	f := e.Flight()
	if f == nil {
		t.Fatal("flying enemy should carry flight state")
	}

	for i := 0; i < 120; i++ {
		e.Move(0, arena, rng)
	}
	if e.Y != 80 {
		t.Errorf("Y after entry = %v, expected 80", e.Y)
	}
	if e.TurnInterval != 4 {
		t.Errorf("TurnInterval = %v, expected 4", e.TurnInterval)
	}

	// First direction change: no dive yet
	e.Move(4, arena, rng)
	if f.DescendCycles != 1 || f.DescendRemaining != 0 || e.Y != 80 {
		t.Errorf("after 1st turn cycles=%d remaining=%d Y=%v", f.DescendCycles, f.DescendRemaining, e.Y)
	}

	// Second change grants a 40 unit dive, consumed one unit per tick
	e.Move(8, arena, rng)
	if f.DescendCycles != 0 || f.DescendRemaining != 39 || e.Y != 81 {
		t.Errorf("after 2nd turn cycles=%d remaining=%d Y=%v", f.DescendCycles, f.DescendRemaining, e.Y)
	}
	for i := 0; i < 50; i++ {
		e.Move(8, arena, rng)
	}
	if f.DescendRemaining != 0 || e.Y != 120 {
		t.Errorf("after dive remaining=%d Y=%v, expected 0 and 120", f.DescendRemaining, e.Y)
	}
}

func TestFlyingEnemyDiveStopsAtGround(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	rng := &scriptedRand{values: []int{1}}
	e := NewFlyingEnemy(cfg.FlyingEnemy, 300, 0)
	e.Y = 190
	e.Flight().DescendRemaining = 40

	for i := 0; i < 60; i++ {
		e.Move(0, arena, rng)
	}
	if e.Y != 200 {
		t.Errorf("Y = %v, expected dive to stop at 200", e.Y)
	}
}

func TestPickupFallsAndRests(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena
	p := NewPickup(cfg.Pickup, 50)

	if p.Y != -20 || p.Health != 1 {
		t.Fatalf("unexpected new pickup %+v", p)
	}
	p.Move(arena)
	if p.Y != -18 {
		t.Errorf("Y = %v, expected -18 after one tick", p.Y)
	}
	for i := 0; i < 200; i++ {
		p.Move(arena)
	}
	if p.Y != 220 {
		t.Errorf("Y = %v, expected to rest at 220", p.Y)
	}
}
