package lazysorted

import (
	"github.com/hupe1980/lazysorted/internal/pivotset"
	"github.com/hupe1980/lazysorted/internal/quickselect"
)

// resolve pins position k: afterwards l.items[k] is the element a full sort
// would place there, and the boundary set records it.
//
// Selection is confined to the unresolved run containing k. Each step
// partitions the run three ways around a random pivot, records the equal
// span as resolved, and continues into the half still containing k. The
// loop replaces the natural recursion, so the stack stays flat no matter
// how adversarial the input is. Runs at or below the cutoff are finished
// with insertion sort and marked sorted as a whole.
func (l *List[T]) resolve(k int) error {
	left, right, exact := l.pivots.Bound(k)
	if exact || left.Flags&pivotset.SortedAfter != 0 {
		return nil
	}

	leftIdx, rightIdx := left.Idx, right.Idx

	steps := 0
	for rightIdx-leftIdx-1 > l.cutoff {
		lo, hi := leftIdx+1, rightIdx
		eqLo, eqHi, err := quickselect.Partition(l.items[lo:hi], l.rng, quickselect.CompareFunc[T](l.compare))
		if err != nil {
			return err
		}
		eqLo, eqHi = eqLo+lo, eqHi+lo
		l.partitions++
		steps++

		l.markSpan(eqLo, eqHi, leftIdx, rightIdx)

		switch {
		case k < eqLo:
			rightIdx = eqLo
		case k >= eqHi:
			leftIdx = eqHi - 1
		default:
			// k landed inside the equal span.
			l.logger.Debug("rank resolved by pivot", "rank", k, "partitions", steps)
			return nil
		}
	}

	if err := quickselect.Insertion(l.items[leftIdx+1:rightIdx], quickselect.CompareFunc[T](l.compare)); err != nil {
		return err
	}
	l.pivots.MarkSorted(leftIdx, rightIdx)

	l.logger.Debug("rank resolved by run sort", "rank", k, "run", rightIdx-leftIdx-1, "partitions", steps)
	return nil
}

// markSpan records the equal span [eqLo, eqHi) produced by partitioning the
// run (leftIdx, rightIdx). Every position in the span already holds its
// final element, so the span becomes one or two pivots with a sorted run
// between them. A half the partition left empty is trivially sorted and is
// marked too, which lets bordering pivots with equal values merge away.
func (l *List[T]) markSpan(eqLo, eqHi, leftIdx, rightIdx int) {
	l.pivots.Insert(eqLo, 0)
	if eqHi-1 != eqLo {
		l.pivots.Insert(eqHi-1, 0)
		l.pivots.MarkSorted(eqLo, eqHi-1)
	}
	if eqLo == leftIdx+1 {
		l.pivots.MarkSorted(leftIdx, eqLo)
	}
	if eqHi == rightIdx {
		l.pivots.MarkSorted(eqHi-1, rightIdx)
	}
}

// materialize sorts positions [start, stop), with start < stop <= Len.
//
// It resolves the two endpoints, then walks the runs in between and
// quicksorts each unsorted one whole. Sorting a run outright is cheaper
// than repeated selection when every position in it is needed anyway.
func (l *List[T]) materialize(start, stop int) error {
	if err := l.resolve(start); err != nil {
		return err
	}
	if stop < len(l.items) {
		if err := l.resolve(stop); err != nil {
			return err
		}
	}

	cur, _, _ := l.pivots.Bound(start)
	for cur.Idx < stop {
		next, ok := l.pivots.Next(cur.Idx)
		if !ok {
			break
		}

		if cur.Flags&pivotset.SortedAfter == 0 {
			if err := quickselect.Sort(l.items[cur.Idx+1:next.Idx], l.rng, l.cutoff, quickselect.CompareFunc[T](l.compare)); err != nil {
				return err
			}
			l.pivots.MarkSorted(cur.Idx, next.Idx)
		}

		cur = next
	}

	return nil
}
