package slayin

import (
	"github.com/vovakirdan/tui-slayin/internal/config"
)

// Spawner adds enemies and pickups to a session on a wall-clock cadence.
// Every spawn event creates one ground enemy; every FlyingEvery-th event also
// a flying enemy and every PickupEvery-th event also a pickup.
type Spawner struct {
	cfg       config.SpawnerConfig
	ramp      *config.SpawnRamp
	lastSpawn float64
	flying    int // Spawn events since the last flying enemy
	pickups   int // Spawn events since the last pickup
	events    int // Total spawn events
}

// NewSpawner creates a spawner whose first spawn is one interval after start.
func NewSpawner(cfg config.SpawnerConfig, diff config.DifficultyConfig, start float64) *Spawner {
	return &Spawner{
		cfg:       cfg,
		ramp:      config.NewSpawnRamp(cfg.Interval, diff),
		lastSpawn: start,
	}
}

// Events returns the number of spawn events so far.
func (sp *Spawner) Events() int {
	return sp.events
}

// Update runs once per tick. It first applies the difficulty ramp for the
// current score, then spawns if the interval has elapsed.
func (sp *Spawner) Update(s *Session, now float64) {
	if interval := sp.ramp.Interval(s.Score); interval < s.SpawnInterval {
		s.SpawnInterval = interval
	}

	if now-sp.lastSpawn < s.SpawnInterval {
		return
	}
	sp.lastSpawn = now
	sp.events++

	arena := s.cfg.Arena
	gc := s.cfg.GroundEnemy
	s.Enemies = append(s.Enemies, NewGroundEnemy(gc, arena, sampleSpan(s.rng, arena.Width-gc.Width), now))

	sp.flying++
	if sp.flying == sp.cfg.FlyingEvery {
		sp.flying = 0
		fc := s.cfg.FlyingEnemy
		s.Enemies = append(s.Enemies, NewFlyingEnemy(fc, sampleSpan(s.rng, arena.Width-fc.Width), now))
	}

	sp.pickups++
	if sp.pickups == sp.cfg.PickupEvery {
		sp.pickups = 0
		pc := s.cfg.Pickup
		s.Pickups = append(s.Pickups, NewPickup(pc, sampleSpan(s.rng, arena.Width-pc.Width)))
	}
}
