package core

import "math/rand/v2"

// Source is the random stream consumed by the generators. *rand.Rand from
// math/rand/v2 satisfies it, as does RNG.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Splitter is a Source that can derive independent child streams.
type Splitter interface {
	Source
	Split() Source
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Split derives a new RNG seeded from this stream. Successive calls yield
// different, reproducible children.
func (r *RNG) Split() Source {
	return &RNG{r: rand.New(rand.NewPCG(r.r.Uint64(), r.r.Uint64()))}
}

// Jitter returns symmetric noise in [-factor/2, factor/2).
func Jitter(src Source, factor float64) float64 {
	return factor * (src.Float64() - 0.5)
}

// Between returns an int in [lo, hi). It returns lo when the range is empty.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}
