package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSlayinConfig() {
		t.Errorf("embedded defaults differ from DefaultSlayinConfig():\n%+v\n%+v", cfg, DefaultSlayinConfig())
	}
}

func TestArenaConstants(t *testing.T) {
	a := DefaultSlayinConfig().Arena
	if a.Width != 640 || a.Height != 320 || a.GroundTop != 240 {
		t.Errorf("unexpected arena %+v", a)
	}
	if a.GroundHeight() != 80 {
		t.Errorf("GroundHeight() = %v, expected 80", a.GroundHeight())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  health: 3\nspawner:\n  interval: 1.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("Player.Health = %d, expected 3", cfg.Player.Health)
	}
	if cfg.Spawner.Interval != 1.25 {
		t.Errorf("Spawner.Interval = %v, expected 1.25", cfg.Spawner.Interval)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Speed != 3 {
		t.Errorf("Player.Speed = %v, expected default 3", cfg.Player.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero interval", "spawner:\n  interval: 0\n"},
		{"zero health", "player:\n  health: 0\n"},
		{"zero cadence", "spawner:\n  pickup_every: 0\n"},
		{"ground outside arena", "arena:\n  ground_top: 400\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSlayinConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	cfg = DefaultSlayinConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Spawner.Interval >= DefaultSlayinConfig().Spawner.Interval {
		t.Errorf("hard preset should spawn faster, got %v", cfg.Spawner.Interval)
	}

	if ParsePreset("bogus") != "" {
		t.Error("ParsePreset should reject unknown names")
	}
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) should return DifficultyEasy")
	}
}

func TestSpawnRamp(t *testing.T) {
	cfg := DefaultSlayinConfig()
	ramp := NewSpawnRamp(cfg.Spawner.Interval, cfg.Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.5},
		{9, 0.5},
		{10, 0.49},
		{19, 0.49},
		{20, 0.48},
		{100, 0.40},
		{300, 0.2},
		{10000, 0.2},
	}

	for _, tc := range tests {
		if got := ramp.Interval(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Interval(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnRampMonotonic(t *testing.T) {
	cfg := DefaultSlayinConfig()
	ramp := NewSpawnRamp(cfg.Spawner.Interval, cfg.Difficulty)

	prev := ramp.Interval(0)
	for score := 1; score <= 1000; score++ {
		cur := ramp.Interval(score)
		if cur > prev {
			t.Fatalf("Interval(%d) = %v increased from %v", score, cur, prev)
		}
		if cur < cfg.Difficulty.MinInterval {
			t.Fatalf("Interval(%d) = %v below floor", score, cur)
		}
		prev = cur
	}
}

func TestSpawnRampDisabled(t *testing.T) {
	cfg := DefaultSlayinConfig()
	cfg.Difficulty.Enabled = false
	ramp := NewSpawnRamp(cfg.Spawner.Interval, cfg.Difficulty)

	if ramp.Interval(500) != cfg.Spawner.Interval {
		t.Errorf("disabled ramp should keep the initial interval, got %v", ramp.Interval(500))
	}
}
