package forecast

import (
	"math/rand/v2"
	"time"
)

// RandSource hands out a random generator for one simulation run.
type RandSource func() *rand.Rand

// NewRandSource returns a source that seeds every run with seed, making runs
// reproducible. A zero seed draws a fresh seed per run from the clock.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		return func() *rand.Rand {
			s := uint64(time.Now().UnixNano())
			return rand.New(rand.NewPCG(s, s>>1|1))
		}
	}
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed>>1|1))
	}
}

// Uniform draws a value in [lo, hi).
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
