package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid config")

// Load loads the arena configuration.
// Search order: customPath -> ~/.slayin/configs/slayin.yaml -> ./configs/slayin.yaml -> embedded default
func Load(customPath string) (SlayinConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlayinConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SlayinConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("slayin.yaml"), filepath.Join("configs", "slayin.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultSlayinYAML)
	if err != nil {
		return DefaultSlayinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they mention, and validates the result.
func Parse(data []byte) (SlayinConfig, error) {
	cfg := DefaultSlayinConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlayinConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SlayinConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation divides by or spawns with.
func (c SlayinConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive", ErrInvalid)
	case c.Arena.GroundTop <= 0 || c.Arena.GroundTop > c.Arena.Height:
		return fmt.Errorf("%w: ground_top must lie inside the arena", ErrInvalid)
	case c.GroundEnemy.Width > c.Arena.Width || c.FlyingEnemy.Width > c.Arena.Width || c.Pickup.Width > c.Arena.Width:
		return fmt.Errorf("%w: spawned bodies must fit the arena width", ErrInvalid)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalid)
	case c.Spawner.Interval <= 0:
		return fmt.Errorf("%w: spawner interval must be positive", ErrInvalid)
	case c.Spawner.FlyingEvery <= 0 || c.Spawner.PickupEvery <= 0:
		return fmt.Errorf("%w: spawn cadences must be positive", ErrInvalid)
	case c.FlyingEnemy.DescendEvery <= 0:
		return fmt.Errorf("%w: descend_every must be positive", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slayin", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SlayinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Spawner.Interval = 0.8
		cfg.Player.Health = 15
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Spawner.Interval = 0.35
		cfg.Player.Health = 5
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
