package config

import (
	_ "embed"
)

//go:embed defaults/slayin.yaml
var defaultSlayinYAML []byte

// DefaultSlayinConfig returns the built-in arena tuning.
// It matches defaults/slayin.yaml and is the fallback if the embed cannot be parsed.
func DefaultSlayinConfig() SlayinConfig {
	return SlayinConfig{
		Arena: ArenaConfig{
			Width:     640,
			Height:    320,
			GroundTop: 240,
		},
		Player: PlayerConfig{
			X:             300,
			Y:             200,
			Width:         40,
			Height:        40,
			Health:        10,
			Speed:         3,
			JumpSpeed:     15,
			GravityRate:   0.18,
			ApexGravity:   0.3,
			GroundGravity: 2,
			Invulnerable:  0.5,
			InvulnDecay:   0.01,
		},
		Weapon: WeaponConfig{
			Width:   40,
			Height:  15,
			OffsetY: 10,
		},
		GroundEnemy: GroundEnemyConfig{
			Width:        40,
			Height:       40,
			Health:       1,
			Speed:        0.5,
			RiseSpeed:    1,
			TurnInterval: 1.5,
		},
		FlyingEnemy: FlyingEnemyConfig{
			Width:         40,
			Height:        40,
			Health:        1,
			Speed:         0.7,
			EntrySpeed:    1,
			EntryLine:     80,
			TurnInterval:  4,
			DescendEvery:  2,
			DescendBudget: 40,
		},
		Pickup: PickupConfig{
			Width:     20,
			Height:    20,
			FallSpeed: 2,
			Heal:      1,
		},
		Spawner: SpawnerConfig{
			Interval:    0.5,
			FlyingEvery: 10,
			PickupEvery: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			ScoreStep:   10,
			Decrement:   0.01,
			MinInterval: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSlayinYAML
}
