package lazysorted

import "cmp"

// CompareFunc orders two elements. It returns a negative value if a sorts
// before b, zero if they are equivalent, and a positive value if a sorts
// after b.
//
// A non-nil error marks the pair as incomparable. The error surfaces from
// the query that attempted the comparison, wrapped in *ErrCompare; it is
// never retried internally.
type CompareFunc[T any] func(a, b T) (int, error)

// Natural returns a CompareFunc for the natural ordering of T. It never
// fails.
func Natural[T cmp.Ordered]() CompareFunc[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// Reverse returns a CompareFunc with the opposite ordering of compare.
func Reverse[T any](compare CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) (int, error) {
		c, err := compare(b, a)
		return c, err
	}
}

// liftCompare adapts an infallible comparator such as cmp.Compare.
func liftCompare[T any](compare func(a, b T) int) CompareFunc[T] {
	return func(a, b T) (int, error) {
		return compare(a, b), nil
	}
}
