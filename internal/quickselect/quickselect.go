// Package quickselect implements the comparator-driven partitioning kernels
// used by the lazy sorting engine: three-way partitioning around a random
// pivot, insertion sort for short runs, and a randomized quicksort for
// whole-run materialization.
//
// All kernels mutate the given slice in place and stop at the first
// comparator failure, leaving the slice permuted but never corrupted.
package quickselect

import "pgregory.net/rand"

// CompareFunc orders two elements. It returns a negative value if a sorts
// before b, zero if they are equivalent, and a positive value if a sorts
// after b. A non-nil error aborts the operation that invoked it.
type CompareFunc[T any] func(a, b T) (int, error)

// Partition performs a three-way partition of xs around a pivot chosen
// uniformly at random. On return, xs[:eqLo] sorts strictly before the pivot,
// xs[eqLo:eqHi] is equivalent to the pivot, and xs[eqHi:] sorts strictly
// after it. The equal span is never empty for a non-empty input.
//
// The uniform pivot choice keeps the expected cost linear in len(xs)
// regardless of the input order, and the explicit equal span keeps it linear
// on inputs dominated by duplicate values.
func Partition[T any](xs []T, rng *rand.Rand, cmp CompareFunc[T]) (eqLo, eqHi int, err error) {
	if len(xs) == 0 {
		return 0, 0, nil
	}

	pivot := xs[rng.Intn(len(xs))]

	// Dutch national flag: [0, lt) < pivot, [lt, i) == pivot, [gt, n) > pivot.
	lt, i, gt := 0, 0, len(xs)
	for i < gt {
		c, err := cmp(xs[i], pivot)
		if err != nil {
			return 0, 0, err
		}

		switch {
		case c < 0:
			xs[lt], xs[i] = xs[i], xs[lt]
			lt++
			i++
		case c > 0:
			gt--
			xs[i], xs[gt] = xs[gt], xs[i]
		default:
			i++
		}
	}

	return lt, gt, nil
}

// Insertion sorts xs in place with insertion sort. It is intended for runs
// at or below the engine's cutoff, where it beats further partitioning.
func Insertion[T any](xs []T, cmp CompareFunc[T]) error {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0; j-- {
			c, err := cmp(xs[j], xs[j-1])
			if err != nil {
				return err
			}
			if c >= 0 {
				break
			}
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}

	return nil
}

// Sort sorts xs in place with a randomized quicksort, switching to insertion
// sort for runs of at most cutoff elements. It recurses into the smaller
// partition half and iterates on the larger one, so the stack depth is
// O(log n) even on adversarial inputs.
func Sort[T any](xs []T, rng *rand.Rand, cutoff int, cmp CompareFunc[T]) error {
	for len(xs) > cutoff {
		eqLo, eqHi, err := Partition(xs, rng, cmp)
		if err != nil {
			return err
		}

		if eqLo < len(xs)-eqHi {
			if err := Sort(xs[:eqLo], rng, cutoff, cmp); err != nil {
				return err
			}
			xs = xs[eqHi:]
		} else {
			if err := Sort(xs[eqHi:], rng, cutoff, cmp); err != nil {
				return err
			}
			xs = xs[:eqLo]
		}
	}

	return Insertion(xs, cmp)
}
