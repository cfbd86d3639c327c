package randx

import (
	"math"
	"math/rand"
)

// Rand is an injectable random source. Everything in the simulation that
// needs randomness takes one of these so runs can be reproduced from a seed.
type Rand struct {
	src *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

func FromSource(src *rand.Rand) *Rand {
	return &Rand{src: src}
}

// Range returns a uniform float64 in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return min + r.src.Float64()*(max-min)
}

// RangeInt returns a uniform int in [min, max] inclusive.
func (r *Rand) RangeInt(min, max int) int {
	return int(math.Floor(r.Range(float64(min), float64(max)+1)))
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.src.Float64() < p
}

// Pick returns a uniform random element. The caller guarantees a non-empty
// slice.
func Pick[T any](r *Rand, items []T) T {
	return items[r.src.Intn(len(items))]
}
