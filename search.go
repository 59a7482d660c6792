package lazysorted

import (
	"slices"

	"github.com/hupe1980/lazysorted/internal/pivotset"
	"github.com/hupe1980/lazysorted/internal/quickselect"
)

// IndexOf returns the position a full sort would give to the first element
// equivalent to item, or ErrNotFound if no element is equivalent.
//
// Like At, IndexOf sorts only as much as the answer requires: it narrows in
// on item by value instead of by rank, recording the same boundaries that
// rank selection would.
func (l *List[T]) IndexOf(item T) (int, error) {
	k, err := l.locate(item)
	if err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, ErrNotFound
	}

	return k, nil
}

// Contains reports whether any element is equivalent to item.
func (l *List[T]) Contains(item T) (bool, error) {
	k, err := l.locate(item)
	if err != nil {
		return false, err
	}

	return k >= 0, nil
}

// Count returns the number of elements equivalent to item.
func (l *List[T]) Count(item T) (int, error) {
	k, err := l.locate(item)
	if err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, nil
	}

	n := len(l.items)

	// Duplicates of item end before the first later boundary whose value
	// sorts after it: everything beyond such a boundary sorts after item
	// by the partition invariant.
	limit := n
	for p, ok := l.pivots.Next(k); ok && p.Idx < n; p, ok = l.pivots.Next(p.Idx) {
		c, err := l.compare(l.items[p.Idx], item)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			limit = p.Idx
			break
		}
	}

	count := 1
	for i := k + 1; i < limit; i++ {
		c, err := l.compare(l.items[i], item)
		if err != nil {
			return 0, err
		}
		if c == 0 {
			count++
		}
	}

	return count, nil
}

// locate returns the smallest position holding an element equivalent to
// item, or -1 if there is none. The buffer ends up with item's run sorted,
// so an immediate repeat locates without partitioning.
func (l *List[T]) locate(item T) (int, error) {
	n := len(l.items)
	if n == 0 {
		return -1, nil
	}

	// Boundary values ascend with position, so binary search the boundary
	// set by value. The sentinels act as -inf and +inf.
	pivots := slices.Collect(l.pivots.All())
	plo, phi := 0, len(pivots)-1
	for phi-plo > 1 {
		mid := (plo + phi) / 2
		c, err := l.compare(l.items[pivots[mid].Idx], item)
		if err != nil {
			return 0, err
		}
		if c < 0 {
			plo = mid
		} else {
			phi = mid
		}
	}
	left, right := pivots[plo], pivots[phi]
	leftIdx, rightIdx := left.Idx, right.Idx

	// Everything at or before leftIdx sorts before item, everything at or
	// after rightIdx sorts at or after it. Narrow the run between them by
	// value until it is small enough to sort outright.
	if left.Flags&pivotset.SortedAfter == 0 {
		for rightIdx-leftIdx-1 > l.cutoff {
			lo, hi := leftIdx+1, rightIdx
			eqLo, eqHi, err := quickselect.Partition(l.items[lo:hi], l.rng, quickselect.CompareFunc[T](l.compare))
			if err != nil {
				return 0, err
			}
			eqLo, eqHi = eqLo+lo, eqHi+lo
			l.partitions++

			l.markSpan(eqLo, eqHi, leftIdx, rightIdx)

			c, err := l.compare(l.items[eqLo], item)
			if err != nil {
				return 0, err
			}
			if c < 0 {
				leftIdx = eqHi - 1
			} else {
				rightIdx = eqLo
			}
		}

		if err := quickselect.Insertion(l.items[leftIdx+1:rightIdx], quickselect.CompareFunc[T](l.compare)); err != nil {
			return 0, err
		}
		l.pivots.MarkSorted(leftIdx, rightIdx)
	}

	// First equivalent element, if present, sits in (leftIdx, rightIdx].
	scanHi := rightIdx
	if scanHi < n {
		scanHi++
	}
	for k := leftIdx + 1; k < scanHi; k++ {
		c, err := l.compare(l.items[k], item)
		if err != nil {
			return 0, err
		}
		if c == 0 {
			return k, nil
		}
	}

	return -1, nil
}
