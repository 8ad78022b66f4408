package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func draw(r *Rand, n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = r.RInt(0, 1000000)
	}
	return v
}

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	r2 := NewRand(13)
	assert.Equal(t, draw(&r1, 10), draw(&r2, 10))
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	r2 := NewRand(14)
	assert.NotEqual(t, draw(&r1, 10), draw(&r2, 10))
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	draw(&r1, 10)

	// A World copied mid-game must deal the same shapes as the original.
	r2 := r1
	assert.Equal(t, draw(&r1, 10), draw(&r2, 10))
	assert.Equal(t, draw(&r1, 10), draw(&r2, 10))
}

func TestRand_RIntStaysInRange(t *testing.T) {
	r := NewRand(7)
	seen := map[int64]bool{}
	for range 1000 {
		v := r.RInt(0, NShapes-1)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(NShapes-1))
		seen[v] = true
	}
	// With 1000 draws every shape shows up.
	assert.Equal(t, NShapes, len(seen))
	assert.Equal(t, int64(5), r.RInt(5, 5))
	assert.Panics(t, func() { r.RInt(3, 2) })
}
