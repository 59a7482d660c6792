// Package pivotset tracks the resolved boundary positions of a partially
// sorted buffer.
//
// A pivot at index p records that the element currently at p is exactly the
// element a full sort would place there, and that the buffer satisfies the
// quicksort partition invariant relative to p: everything left of p sorts
// at or before the element at p, everything right of p at or after it.
// Pivots partition the buffer into maximal unresolved runs; flags on a pivot
// additionally mark an adjacent run as fully sorted, so a whole run can be
// resolved without one pivot per position.
//
// Pivots are kept in a B-tree keyed by position, giving the engine
// predecessor/successor lookups in O(log m) for m tracked pivots. Sentinel
// pivots at -1 and n bound the buffer and are never removed.
package pivotset

import (
	"iter"

	"github.com/google/btree"
)

// Flags describes the sortedness of the runs adjacent to a pivot.
type Flags uint8

const (
	// SortedAfter marks the run between this pivot and its successor as
	// fully sorted.
	SortedAfter Flags = 1 << iota

	// SortedBefore marks the run between the predecessor pivot and this
	// pivot as fully sorted.
	SortedBefore
)

// Pivot is a resolved position together with its adjacency flags.
type Pivot struct {
	Idx   int
	Flags Flags
}

const degree = 8

// Set is an ordered set of pivots over a buffer of fixed length.
type Set struct {
	tree *btree.BTreeG[Pivot]
	n    int
}

// New returns a Set for a buffer of n elements, holding only the two
// sentinel pivots at -1 and n.
func New(n int) *Set {
	s := &Set{
		tree: btree.NewG(degree, func(a, b Pivot) bool { return a.Idx < b.Idx }),
		n:    n,
	}
	s.tree.ReplaceOrInsert(Pivot{Idx: -1})
	s.tree.ReplaceOrInsert(Pivot{Idx: n})

	return s
}

// Len reports the number of interior pivots, excluding the sentinels.
func (s *Set) Len() int {
	return s.tree.Len() - 2
}

// Get returns the pivot at idx, if one exists.
func (s *Set) Get(idx int) (Pivot, bool) {
	return s.tree.Get(Pivot{Idx: idx})
}

// Bound locates the unresolved run containing position k, with -1 <= k <= n.
// It returns the greatest pivot left with left.Idx <= k and the least pivot
// right with right.Idx > k. exact reports whether k itself is a pivot; when
// k == n (the upper sentinel) right is the zero Pivot.
func (s *Set) Bound(k int) (left, right Pivot, exact bool) {
	s.tree.DescendLessOrEqual(Pivot{Idx: k}, func(p Pivot) bool {
		left = p
		return false
	})
	s.tree.AscendGreaterOrEqual(Pivot{Idx: k + 1}, func(p Pivot) bool {
		right = p
		return false
	})

	return left, right, left.Idx == k
}

// Insert adds a pivot at idx. The position must lie strictly inside an
// unresolved run, so it never collides with an existing pivot.
func (s *Set) Insert(idx int, flags Flags) {
	s.tree.ReplaceOrInsert(Pivot{Idx: idx, Flags: flags})
}

// Delete removes the pivot at idx, if present. Sentinels are kept.
func (s *Set) Delete(idx int) {
	if idx < 0 || idx >= s.n {
		return
	}
	s.tree.Delete(Pivot{Idx: idx})
}

// Next returns the pivot with the smallest index strictly greater than idx.
func (s *Set) Next(idx int) (Pivot, bool) {
	var (
		p  Pivot
		ok bool
	)
	s.tree.AscendGreaterOrEqual(Pivot{Idx: idx + 1}, func(next Pivot) bool {
		p, ok = next, true
		return false
	})

	return p, ok
}

// Prev returns the pivot with the greatest index strictly less than idx.
func (s *Set) Prev(idx int) (Pivot, bool) {
	var (
		p  Pivot
		ok bool
	)
	s.tree.DescendLessOrEqual(Pivot{Idx: idx - 1}, func(prev Pivot) bool {
		p, ok = prev, true
		return false
	})

	return p, ok
}

// MarkSorted records that the run between the adjacent pivots at leftIdx and
// rightIdx is fully sorted, then drops any interior pivot that ends up
// sorted on both sides. Dropping such a pivot merges the two sorted runs it
// separated; its neighbors already carry the flags that keep the invariant.
func (s *Set) MarkSorted(leftIdx, rightIdx int) {
	s.orFlags(leftIdx, SortedAfter)
	s.orFlags(rightIdx, SortedBefore)
	s.compact(leftIdx)
	s.compact(rightIdx)
}

func (s *Set) orFlags(idx int, flags Flags) {
	p, ok := s.tree.Get(Pivot{Idx: idx})
	if !ok {
		return
	}
	p.Flags |= flags
	s.tree.ReplaceOrInsert(p)
}

func (s *Set) compact(idx int) {
	if idx < 0 || idx >= s.n {
		return
	}
	p, ok := s.tree.Get(Pivot{Idx: idx})
	if ok && p.Flags&SortedAfter != 0 && p.Flags&SortedBefore != 0 {
		s.tree.Delete(p)
	}
}

// All iterates the pivots in ascending index order, sentinels included.
func (s *Set) All() iter.Seq[Pivot] {
	return func(yield func(Pivot) bool) {
		s.tree.Ascend(func(p Pivot) bool {
			return yield(p)
		})
	}
}
