// Package random provides the NumberSource adapter backed by math/rand/v2.
package random

import (
	"math/rand/v2"
	"time"
)

// Source implements secondary.NumberSource using a PCG generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with seed. The same seed always yields
// the same sequence.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSource creates a Source seeded from the current time.
func NewTimeSource() *Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

// IntN returns a uniformly distributed integer in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}
