package testutil

import (
	"sync"

	"pgregory.net/rand"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(seed),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a shuffled permutation of the integers 0..n-1.
func (r *RNG) Perm(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	Shuffle(r, xs)
	return xs
}

// IntsWithDuplicates returns n draws from only distinct different values,
// producing the duplicate-heavy inputs three-way partitioning exists for.
func (r *RNG) IntsWithDuplicates(n, distinct int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(distinct)
	}
	return xs
}

// Shuffle permutes xs uniformly at random (Fisher-Yates).
func Shuffle[T any](r *RNG, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
