package lazysorted

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"pgregory.net/rand"

	"github.com/hupe1980/lazysorted/internal/pivotset"
)

// List is a lazily sorted list: it answers order-statistic and sorted-order
// queries over a fixed collection of elements, sorting only as much as the
// queries demand. Answers are always identical to those of a fully sorted
// copy, and work done for one query is reused by every later one.
//
// A List owns an independent copy of its input; the input is never mutated
// and never observed again after construction.
//
// A List is single-writer: every query except Len may reorder the buffer,
// so concurrent use of one List requires external synchronization. Distinct
// Lists share nothing and are safe to use independently.
type List[T any] struct {
	items   []T
	compare CompareFunc[T]
	pivots  *pivotset.Set
	rng     *rand.Rand
	cutoff  int
	logger  *Logger

	// Query counters, reported by Stats. Plain fields: a List is
	// single-writer by contract.
	comparisons uint64
	partitions  uint64
}

func newList[T any](items []T, compare CompareFunc[T], optFns ...Option) *List[T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	var rng *rand.Rand
	if o.hasSeed {
		rng = rand.New(o.seed)
	} else {
		rng = rand.New()
	}

	l := &List[T]{
		items:  items,
		pivots: pivotset.New(len(items)),
		rng:    rng,
		cutoff: o.cutoff,
		logger: o.logger,
	}

	// Every comparison goes through this wrapper: it feeds the Stats
	// counter and turns comparator failures into *ErrCompare.
	l.compare = func(a, b T) (int, error) {
		l.comparisons++
		c, err := compare(a, b)
		if err != nil {
			return 0, &ErrCompare{cause: err}
		}
		return c, nil
	}

	return l
}

// New creates a List over a copy of items, ordered naturally.
func New[T cmp.Ordered](items []T, optFns ...Option) *List[T] {
	return newList(slices.Clone(items), Natural[T](), optFns...)
}

// NewFunc creates a List over a copy of items, ordered by compare.
// compare follows the cmp.Compare contract: negative if a sorts before b,
// zero if equivalent, positive if a sorts after b.
func NewFunc[T any](items []T, compare func(a, b T) int, optFns ...Option) *List[T] {
	return newList(slices.Clone(items), liftCompare(compare), optFns...)
}

// NewCompareFunc creates a List over a copy of items, ordered by a fallible
// comparator. A comparator failure surfaces from the query that attempted
// the comparison, wrapped in *ErrCompare; see CompareFunc.
func NewCompareFunc[T any](items []T, compare CompareFunc[T], optFns ...Option) *List[T] {
	return newList(slices.Clone(items), compare, optFns...)
}

// Collect creates a List from a finite sequence, ordered naturally.
// The sequence is drained exactly once; no sorting happens during
// construction.
func Collect[T cmp.Ordered](seq iter.Seq[T], optFns ...Option) *List[T] {
	return newList(slices.Collect(seq), Natural[T](), optFns...)
}

// CollectErr creates a List from a finite, fallible sequence, ordered
// naturally. If the source yields an error, construction stops and returns
// it; no List is produced.
func CollectErr[T cmp.Ordered](seq iter.Seq2[T, error], optFns ...Option) (*List[T], error) {
	var items []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	return newList(items, Natural[T](), optFns...), nil
}

// Keys creates a List over the keys of m, ordered naturally. Values take no
// part in the ordering.
func Keys[K cmp.Ordered, V any](m map[K]V, optFns ...Option) *List[K] {
	return newList(slices.Collect(maps.Keys(m)), Natural[K](), optFns...)
}

// Len returns the number of elements. It is O(1), never fails and has no
// side effects.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element that a full sort would place at position k.
// It fails with *ErrOutOfRange unless 0 <= k < Len.
//
// At resolves position k on first access and answers from the boundary set
// afterwards: querying the same k again performs no further partitioning.
func (l *List[T]) At(k int) (T, error) {
	var zero T
	if k < 0 || k >= len(l.items) {
		return zero, &ErrOutOfRange{Index: k, Len: len(l.items)}
	}

	if err := l.resolve(k); err != nil {
		return zero, err
	}

	return l.items[k], nil
}

// Slice returns the elements at positions [start, stop) in ascending order.
// It fails with *ErrOutOfRange unless 0 <= start <= stop <= Len.
//
// Positions outside [start, stop) are resolved only as far as the
// partitioning happens to pin them down.
func (l *List[T]) Slice(start, stop int) ([]T, error) {
	if err := l.checkRange(start, stop); err != nil {
		return nil, err
	}
	if start == stop {
		return []T{}, nil
	}

	if err := l.materialize(start, stop); err != nil {
		return nil, err
	}

	return slices.Clone(l.items[start:stop]), nil
}

// Between returns the elements occupying positions [start, stop) of the
// sorted order, in unspecified order. It fails with *ErrOutOfRange unless
// 0 <= start <= stop <= Len.
//
// Only the two boundary positions are resolved, so Between is cheaper than
// Slice when the order inside the range does not matter, e.g. when trimming
// outliers from both ends of a data set.
func (l *List[T]) Between(start, stop int) ([]T, error) {
	if err := l.checkRange(start, stop); err != nil {
		return nil, err
	}
	if start == stop {
		return []T{}, nil
	}

	if start > 0 {
		if err := l.resolve(start); err != nil {
			return nil, err
		}
	}
	if stop < len(l.items) {
		if err := l.resolve(stop); err != nil {
			return nil, err
		}
	}

	return slices.Clone(l.items[start:stop]), nil
}

// MinK returns the k smallest elements in ascending order.
// It fails with *ErrOutOfRange unless 0 <= k <= Len.
func (l *List[T]) MinK(k int) ([]T, error) {
	return l.Slice(0, k)
}

// MaxK returns the k largest elements in descending order.
// It fails with *ErrOutOfRange unless 0 <= k <= Len.
func (l *List[T]) MaxK(k int) ([]T, error) {
	if k < 0 || k > len(l.items) {
		return nil, &ErrOutOfRange{Index: k, Len: len(l.items)}
	}

	out, err := l.Slice(len(l.items)-k, len(l.items))
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)

	return out, nil
}

// Sorted returns all elements in ascending order, fully materializing the
// sort. Afterwards every position is resolved and all queries are cheap.
func (l *List[T]) Sorted() ([]T, error) {
	return l.Slice(0, len(l.items))
}

func (l *List[T]) checkRange(start, stop int) error {
	if start < 0 || start > len(l.items) {
		return &ErrOutOfRange{Index: start, Len: len(l.items)}
	}
	if stop < start || stop > len(l.items) {
		return &ErrOutOfRange{Index: stop, Len: len(l.items)}
	}
	return nil
}
