package config

import "math"

// SpawnRamp computes the ground-enemy spawn interval for a score.
// The interval shrinks by Decrement once per ScoreStep milestone reached and
// never drops below MinInterval. Because score never decreases during a
// session, the interval it yields is monotonically non-increasing.
type SpawnRamp struct {
	initial float64
	cfg     DifficultyConfig
}

// NewSpawnRamp creates a ramp starting at the given interval.
func NewSpawnRamp(initial float64, cfg DifficultyConfig) *SpawnRamp {
	return &SpawnRamp{initial: initial, cfg: cfg}
}

// IsEnabled returns whether the interval shrinks at all.
func (r *SpawnRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.ScoreStep > 0 && r.cfg.Decrement > 0
}

// Milestones returns how many decrements apply at the given score.
func (r *SpawnRamp) Milestones(score int) int {
	if !r.IsEnabled() || score <= 0 {
		return 0
	}
	return score / r.cfg.ScoreStep
}

// Interval returns the spawn interval in seconds at the given score.
func (r *SpawnRamp) Interval(score int) float64 {
	floor := r.cfg.MinInterval
	if r.initial < floor {
		return r.initial
	}
	interval := r.initial - float64(r.Milestones(score))*r.cfg.Decrement
	// Round away float drift so 0.5 - 0.01 is 0.49, not 0.48999999999999994.
	interval = math.Round(interval*1e9) / 1e9
	return math.Max(floor, interval)
}
