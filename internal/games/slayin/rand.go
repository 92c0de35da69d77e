package slayin

import (
	"math/rand"
	"time"
)

// Rand is the random source used for spawn positions and enemy directions.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded source. Seed 0 seeds from the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// sampleDirection returns -1, 0 or 1 with equal probability.
func sampleDirection(rng Rand) int {
	return rng.Intn(3) - 1
}

// sampleSpan returns a whole number in [0, span], the way spawn columns are picked.
func sampleSpan(rng Rand, span float64) float64 {
	n := int(span)
	if n <= 0 {
		return 0
	}
	return float64(rng.Intn(n + 1))
}
