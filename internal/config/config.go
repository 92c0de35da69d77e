// Package config provides YAML-based game configuration loading and
// difficulty management for the arena.
package config

// SlayinConfig contains all tuning for one arena session.
type SlayinConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Weapon      WeaponConfig      `yaml:"weapon"`
	GroundEnemy GroundEnemyConfig `yaml:"ground_enemy"`
	FlyingEnemy FlyingEnemyConfig `yaml:"flying_enemy"`
	Pickup      PickupConfig      `yaml:"pickup"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// ArenaConfig defines the playfield geometry in arena units.
type ArenaConfig struct {
	Width     float64 `yaml:"width"`      // 640
	Height    float64 `yaml:"height"`     // 320
	GroundTop float64 `yaml:"ground_top"` // First row of the ground band (240); bodies rest at GroundTop-H
}

// GroundHeight returns the height of the ground band.
func (a ArenaConfig) GroundHeight() float64 {
	return a.Height - a.GroundTop
}

// PlayerConfig defines the player body and its movement.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`          // Horizontal units per tick
	JumpSpeed     float64 `yaml:"jump_speed"`     // Vertical units per tick at gravity factor 1
	GravityRate   float64 `yaml:"gravity_rate"`   // Per-tick decay/growth of the gravity factor
	ApexGravity   float64 `yaml:"apex_gravity"`   // Gravity factor at which the jump turns around
	GroundGravity float64 `yaml:"ground_gravity"` // Gravity factor restored on landing
	Invulnerable  float64 `yaml:"invulnerable"`   // Invulnerability granted by a hit
	InvulnDecay   float64 `yaml:"invuln_decay"`   // Invulnerability removed per tick
}

// WeaponConfig defines the sword carried in front of the player.
type WeaponConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"` // Distance below the player's top edge
}

// GroundEnemyConfig defines enemies that climb out of the ground.
type GroundEnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`         // Horizontal units per tick
	RiseSpeed    float64 `yaml:"rise_speed"`    // Units per tick while emerging
	TurnInterval float64 `yaml:"turn_interval"` // Seconds between direction changes
}

// FlyingEnemyConfig defines enemies that drop in from above.
type FlyingEnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	EntrySpeed    float64 `yaml:"entry_speed"`
	EntryLine     float64 `yaml:"entry_line"` // Enemies descend until they reach this y
	TurnInterval  float64 `yaml:"turn_interval"`
	DescendEvery  int     `yaml:"descend_every"`  // Direction changes per descent
	DescendBudget int     `yaml:"descend_budget"` // Units descended per descent
}

// PickupConfig defines falling health pickups.
type PickupConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	FallSpeed float64 `yaml:"fall_speed"`
	Heal      int     `yaml:"heal"`
}

// SpawnerConfig defines spawn cadence.
type SpawnerConfig struct {
	Interval    float64 `yaml:"interval"`     // Initial seconds between ground enemies
	FlyingEvery int     `yaml:"flying_every"` // Ground spawns per flying enemy
	PickupEvery int     `yaml:"pickup_every"` // Ground spawns per pickup
}

// DifficultyConfig defines how the spawn interval shrinks with score.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ScoreStep   int     `yaml:"score_step"`   // Score milestone size
	Decrement   float64 `yaml:"decrement"`    // Interval reduction per milestone
	MinInterval float64 `yaml:"min_interval"` // Interval floor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
