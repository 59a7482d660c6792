package lazysorted

import (
	"slices"
	"testing"

	"github.com/hupe1980/lazysorted/testutil"
)

const benchSize = 100_000

func benchInput(b *testing.B) []int {
	b.Helper()
	rng := testutil.NewRNG(4711)
	return rng.Perm(benchSize)
}

// BenchmarkMedian measures a single order statistic, the headline win over
// sorting first.
func BenchmarkMedian(b *testing.B) {
	xs := benchInput(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ls := New(xs, WithSeed(uint64(i)+1))
		if _, err := ls.At(benchSize / 2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMedianViaSort is the eager baseline for BenchmarkMedian.
func BenchmarkMedianViaSort(b *testing.B) {
	xs := benchInput(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sorted := slices.Clone(xs)
		slices.Sort(sorted)
		_ = sorted[benchSize/2]
	}
}

// BenchmarkTop10 measures top-k consumption via early-terminated iteration.
func BenchmarkTop10(b *testing.B) {
	xs := benchInput(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ls := New(xs, WithSeed(uint64(i)+1))

		seen := 0
		for _, err := range ls.Ascend() {
			if err != nil {
				b.Fatal(err)
			}
			seen++
			if seen == 10 {
				break
			}
		}
	}
}

// BenchmarkSorted measures full materialization, the worst case that must
// stay competitive with an ordinary sort.
func BenchmarkSorted(b *testing.B) {
	xs := benchInput(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ls := New(xs, WithSeed(uint64(i)+1))
		if _, err := ls.Sorted(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolvedAt measures a repeated query, which must be a pure
// boundary-set lookup.
func BenchmarkResolvedAt(b *testing.B) {
	xs := benchInput(b)
	ls := New(xs, WithSeed(1))
	if _, err := ls.At(benchSize / 2); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ls.At(benchSize / 2); err != nil {
			b.Fatal(err)
		}
	}
}
