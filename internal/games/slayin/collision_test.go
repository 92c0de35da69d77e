package slayin

import (
	"testing"

	"github.com/vovakirdan/tui-slayin/internal/config"
)

func TestResolvePairs(t *testing.T) {
	cfg := config.DefaultSlayinConfig()
	arena := cfg.Arena

	t.Run("enemy hurts player in either order", func(t *testing.T) {
		for _, swap := range []bool{false, true} {
			p := NewPlayer(cfg.Player, cfg.Weapon)
			e := NewGroundEnemy(cfg.GroundEnemy, arena, 310, 0)
			e.Y = 200
			rec := &Recorder{}

			var hit bool
			if swap {
				hit = Resolve(p, e, rec)
			} else {
				hit = Resolve(e, p, rec)
			}
			if !hit {
				t.Fatal("expected overlap")
			}
			if p.Health != 9 || p.Invulnerable != 0.5 {
				t.Errorf("swap=%v: health=%d invulnerable=%v", swap, p.Health, p.Invulnerable)
			}
			if e.Health != 1 {
				t.Errorf("swap=%v: enemy health changed to %d", swap, e.Health)
			}
			if rec.Count(EventHit) != 1 || rec.Events[0].Health != 9 {
				t.Errorf("swap=%v: events %+v", swap, rec.Events)
			}
		}
	})

	t.Run("invulnerable player is not hurt", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.Weapon)
		p.Invulnerable = 0.2
		e := NewGroundEnemy(cfg.GroundEnemy, arena, 310, 0)
		e.Y = 200
		rec := &Recorder{}

		if !Resolve(e, p, rec) {
			t.Fatal("expected overlap")
		}
		if p.Health != 10 || len(rec.Events) != 0 {
			t.Errorf("health=%d events=%+v", p.Health, rec.Events)
		}
	})

	t.Run("weapon damages enemy", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.Weapon)
		e := NewGroundEnemy(cfg.GroundEnemy, arena, 250, 0)
		e.Y = 200
		rec := &Recorder{}

		if !Resolve(&p.Weapon, e, rec) {
			t.Fatal("expected overlap")
		}
		if e.Health != 0 {
			t.Errorf("enemy health = %d, expected 0", e.Health)
		}
		if len(rec.Events) != 0 {
			t.Errorf("weapon hits emit nothing, got %+v", rec.Events)
		}
	})

	t.Run("pickup heals once", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.Weapon)
		p.Health = 4
		pk := NewPickup(cfg.Pickup, 310)
		pk.Y = 210
		rec := &Recorder{}

		Resolve(pk, p, rec)
		Resolve(p, pk, rec)
		if p.Health != 5 || pk.Health != 0 {
			t.Errorf("player health=%d pickup health=%d", p.Health, pk.Health)
		}
		if rec.Count(EventHealed) != 1 {
			t.Errorf("expected one Healed, got %+v", rec.Events)
		}
	})

	t.Run("ignored pairs", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.Weapon)
		a := NewGroundEnemy(cfg.GroundEnemy, arena, 300, 0)
		b := NewFlyingEnemy(cfg.FlyingEnemy, 310, 0)
		a.Y, b.Y = 200, 200
		pk := NewPickup(cfg.Pickup, 310)
		pk.Y = 210
		rec := &Recorder{}

		Resolve(a, b, rec)
		Resolve(a, pk, rec)
		Resolve(p, &p.Weapon, rec)
		if a.Health != 1 || b.Health != 1 || pk.Health != 1 || p.Health != 10 {
			t.Errorf("ignored pairs changed state: %d %d %d %d", a.Health, b.Health, pk.Health, p.Health)
		}
		if len(rec.Events) != 0 {
			t.Errorf("ignored pairs emitted %+v", rec.Events)
		}
	})

	t.Run("touching edges do not collide", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.Weapon)
		e := NewGroundEnemy(cfg.GroundEnemy, arena, 340, 0)
		e.Y = 200
		rec := &Recorder{}

		if Resolve(e, p, rec) {
			t.Error("edge contact reported as overlap")
		}
		if p.Health != 10 {
			t.Errorf("health = %d, expected 10", p.Health)
		}
	})
}

func TestKindOrderAndNames(t *testing.T) {
	order := []Kind{KindPlayer, KindWeapon, KindGroundEnemy, KindFlyingEnemy, KindPickup}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%s should sort before %s", order[i-1], order[i])
		}
	}
	if !KindGroundEnemy.IsEnemy() || !KindFlyingEnemy.IsEnemy() || KindPickup.IsEnemy() {
		t.Error("IsEnemy mismatch")
	}
	if KindFlyingEnemy.String() != "FlyingEnemy" {
		t.Errorf("String = %q", KindFlyingEnemy.String())
	}
}
