package lazysorted

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/lazysorted/internal/pivotset"
)

// Stats is a snapshot of how much ordering work a List has done so far.
type Stats struct {
	// Len is the element count.
	Len int

	// Boundaries is the number of interior boundary positions currently
	// tracked. Merged sorted runs drop their inner boundaries, so this can
	// shrink as resolution progresses.
	Boundaries int

	// Comparisons and Partitions count comparator calls and three-way
	// partition passes since construction.
	Comparisons uint64
	Partitions  uint64

	// Resolved holds every position whose final sorted element is already
	// in place. A fully resolved List has cardinality Len.
	Resolved *roaring.Bitmap
}

// Stats reports resolution progress. It performs no comparisons and
// resolves nothing; the bitmap is built fresh on every call.
//
// Tests use Stats to pin down the laziness contract: a single At on a large
// List must leave most positions unresolved.
func (l *List[T]) Stats() Stats {
	resolved := roaring.New()

	var prev pivotset.Pivot
	first := true
	for p := range l.pivots.All() {
		if !first {
			// Runs marked sorted are resolved end to end; runs of at
			// most one element are trivially resolved.
			if prev.Flags&pivotset.SortedAfter != 0 || p.Idx-prev.Idx-1 <= 1 {
				resolved.AddRange(uint64(prev.Idx+1), uint64(p.Idx))
			}
		}
		if p.Idx >= 0 && p.Idx < len(l.items) {
			resolved.Add(uint32(p.Idx))
		}
		prev, first = p, false
	}

	return Stats{
		Len:         len(l.items),
		Boundaries:  l.pivots.Len(),
		Comparisons: l.comparisons,
		Partitions:  l.partitions,
		Resolved:    resolved,
	}
}
