package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerm(t *testing.T) {
	rng := NewRNG(4711)

	xs := rng.Perm(100)
	assert.Len(t, xs, 100)

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}

func TestIntsWithDuplicates(t *testing.T) {
	rng := NewRNG(4711)

	xs := rng.IntsWithDuplicates(1000, 5)
	assert.Len(t, xs, 1000)
	for _, v := range xs {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(99)
	first := rng.Perm(32)

	rng.Reset()
	assert.Equal(t, first, rng.Perm(32))
}
