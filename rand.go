package main

import "math/rand/v2"

// Rand is a deterministic random number generator. The World uses its own
// Rand, seeded from the Playthrough, so that replaying a playthrough gives
// the same sequence of shapes.
// Rand is a plain value: copying it gives an independent generator in the
// same state.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [min, max].
func (r *Rand) RInt(min, max int64) int64 {
	if max < min {
		panic("RInt called with max < min")
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

var defaultRand = NewRand(0)

// RSeed and RInt work on a package-level generator. Only tests and debug code
// should use them, the World has its own generator.
func RSeed(seed int64) {
	defaultRand = NewRand(seed)
}

func RInt(min, max int64) int64 {
	return defaultRand.RInt(min, max)
}
