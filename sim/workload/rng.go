package workload

import "math/rand"

// RNG wraps a seeded generator for the UUniFast auto-generator, giving the
// scenario deterministic reproducibility: the same seed and config always
// produce the same synthetic traffic set.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

func (g *RNG) Float64() float64 { return g.r.Float64() }
func (g *RNG) Intn(n int) int   { return g.r.Intn(n) }
