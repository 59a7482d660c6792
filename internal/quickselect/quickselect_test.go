package quickselect

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rand"
)

func cmpInt(a, b int) (int, error) {
	return cmp.Compare(a, b), nil
}

func TestPartition(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		eqLo, eqHi, err := Partition(nil, rand.New(1), cmpInt)
		require.NoError(t, err)
		assert.Equal(t, 0, eqLo)
		assert.Equal(t, 0, eqHi)
	})

	t.Run("Invariants", func(t *testing.T) {
		fixtures := [][]int{
			{42},
			{2, 1},
			{3, 1, 2},
			{5, 5, 5},
			{10, -2, 7, 7, 3},
			{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
			{1, 1, 2, 2, 3, 3, 1, 2, 3, 1},
		}

		rng := rand.New(4711)
		for _, fixture := range fixtures {
			xs := slices.Clone(fixture)

			eqLo, eqHi, err := Partition(xs, rng, cmpInt)
			require.NoError(t, err)

			// A non-empty input always produces a non-empty equal span.
			require.Less(t, eqLo, eqHi)
			require.LessOrEqual(t, eqHi, len(xs))

			pivot := xs[eqLo]
			for _, v := range xs[:eqLo] {
				assert.Less(t, v, pivot)
			}
			for _, v := range xs[eqLo:eqHi] {
				assert.Equal(t, pivot, v)
			}
			for _, v := range xs[eqHi:] {
				assert.Greater(t, v, pivot)
			}

			// Same multiset as the input.
			sorted := slices.Clone(fixture)
			slices.Sort(sorted)
			resorted := slices.Clone(xs)
			slices.Sort(resorted)
			assert.Equal(t, sorted, resorted)
		}
	})

	t.Run("CompareError", func(t *testing.T) {
		errBoom := errors.New("boom")
		failing := func(a, b int) (int, error) { return 0, errBoom }

		_, _, err := Partition([]int{3, 1, 2}, rand.New(1), failing)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestInsertion(t *testing.T) {
	t.Run("Sorts", func(t *testing.T) {
		fixtures := [][]int{
			{},
			{1},
			{2, 1},
			{5, 5, 5},
			{10, -2, 7, 7, 3},
			{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		}

		for _, fixture := range fixtures {
			xs := slices.Clone(fixture)
			require.NoError(t, Insertion(xs, cmpInt))
			assert.True(t, slices.IsSorted(xs), "fixture %v", fixture)
		}
	})

	t.Run("CompareError", func(t *testing.T) {
		errBoom := errors.New("boom")
		failing := func(a, b int) (int, error) { return 0, errBoom }

		assert.ErrorIs(t, Insertion([]int{2, 1}, failing), errBoom)
	})
}

func TestSort(t *testing.T) {
	t.Run("MatchesReference", func(t *testing.T) {
		rng := rand.New(12345)

		for _, n := range []int{0, 1, 2, 3, 16, 17, 100, 1000} {
			for _, cutoff := range []int{1, 4, 16} {
				xs := make([]int, n)
				for i := range xs {
					xs[i] = rng.Intn(50) // plenty of duplicates
				}

				want := slices.Clone(xs)
				slices.Sort(want)

				require.NoError(t, Sort(xs, rng, cutoff, cmpInt))
				assert.Equal(t, want, xs, "n=%d cutoff=%d", n, cutoff)
			}
		}
	})

	t.Run("CompareError", func(t *testing.T) {
		errBoom := errors.New("boom")
		failing := func(a, b int) (int, error) { return 0, errBoom }

		assert.ErrorIs(t, Sort([]int{3, 1, 2}, rand.New(1), 1, failing), errBoom)
	})
}
