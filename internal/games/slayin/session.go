// Package slayin implements a Slayin-style arena brawler.
// A player walks and jumps through a side-on arena, slashing ground and flying
// enemies with a sword and collecting health pickups, until health runs out.
package slayin

import (
	"github.com/vovakirdan/tui-slayin/internal/config"
	"github.com/vovakirdan/tui-slayin/internal/core"
)

// State is the session state machine: Running until the player dies or
// quits, then Over for good. A restart builds a new Session.
type State int

const (
	StateRunning State = iota
	StateOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateOver {
		return "Over"
	}
	return "Running"
}

// Session is the complete state of one playthrough. It is owned by a single
// host loop and never shared.
type Session struct {
	Player        *Player
	Enemies       []*Enemy
	Pickups       []*Pickup
	Score         int
	SpawnInterval float64 // Seconds between ground spawns; only ever shrinks

	cfg        config.SlayinConfig
	clock      Clock
	rng        Rand
	sink       EventSink
	spawner    *Spawner
	state      State
	startTime  float64
	endTime    float64
	ticks      int
	jumpQueued bool
}

// NewSession starts a playthrough at the clock's current time.
// A nil sink discards notifications.
func NewSession(cfg config.SlayinConfig, clock Clock, rng Rand, sink EventSink) *Session {
	if sink == nil {
		sink = discard{}
	}
	now := clock.Now()
	return &Session{
		Player:        NewPlayer(cfg.Player, cfg.Weapon),
		SpawnInterval: cfg.Spawner.Interval,
		cfg:           cfg,
		clock:         clock,
		rng:           rng,
		sink:          sink,
		spawner:       NewSpawner(cfg.Spawner, cfg.Difficulty, now),
		state:         StateRunning,
		startTime:     now,
	}
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.SlayinConfig {
	return s.cfg
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Ticks returns the number of simulation ticks run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Spawner exposes the spawn bookkeeping.
func (s *Session) Spawner() *Spawner {
	return s.spawner
}

// Elapsed returns seconds since the session started, frozen once it is over.
func (s *Session) Elapsed() float64 {
	if s.state == StateOver {
		return s.endTime - s.startTime
	}
	return s.clock.Now() - s.startTime
}

// Input applies host intent between ticks: Left/Right set the walking
// direction (which persists until changed), Jump queues a jump for the next
// tick, Quit ends the session.
func (s *Session) Input(in core.InputFrame) {
	if s.state != StateRunning {
		return
	}
	if in.Has(core.ActionLeft) {
		s.Player.Direction = -1
	}
	if in.Has(core.ActionRight) {
		s.Player.Direction = 1
	}
	if in.Has(core.ActionJump) {
		s.jumpQueued = true
	}
	if in.Has(core.ActionQuit) {
		s.End()
	}
}

// Tick runs one simulation step: spawn, move, collide, check for death.
// It reports false without doing anything once the session is over.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	s.ticks++
	now := s.clock.Now()
	arena := s.cfg.Arena

	s.spawner.Update(s, now)

	if s.jumpQueued {
		s.Player.Jump(arena)
		s.jumpQueued = false
	}
	s.Player.Move(arena)
	s.Player.DecayInvulnerability()
	for _, e := range s.Enemies {
		e.Move(now, arena, s.rng)
	}
	for _, p := range s.Pickups {
		p.Move(arena)
	}

	s.resolveCollisions()

	if s.Player.Health <= 0 {
		s.Player.Health = 0
		s.End()
	}
	return true
}

// End moves the session to Over and emits SessionEnded. Only the first call
// has any effect.
func (s *Session) End() {
	if s.state == StateOver {
		return
	}
	s.endTime = s.clock.Now()
	s.state = StateOver
	s.sink.SessionEnded(s.Elapsed(), s.Score)
}
