// Package lazysorted provides a lazily sorted list: order-statistic and
// sorted-order queries over a fixed collection, computing only the ordering
// information callers actually demand.
//
// A List answers "what is the k-th smallest element?" without committing to
// a full sort up front. Internally it runs randomized three-way quickselect
// confined to the unresolved part of the buffer and remembers every
// boundary it establishes, so:
//
//   - A single At(k) costs expected O(n) comparisons.
//   - Querying r distinct positions costs expected O(n + r log r) in total.
//   - Querying everything costs expected O(n log n), the same as sorting.
//   - Repeated queries are answered from the boundary set without work.
//
// Answers are always identical to those of a fully sorted copy; only the
// amount of work varies.
//
// # Quick Start
//
// Build a List from any finite source and query it:
//
//	ls := lazysorted.New([]int{10, -2, 7, 7, 3})
//
//	v, err := ls.At(2) // median: 7
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Ordered iteration is lazy too; breaking early leaves the tail unsorted:
//
//	for v, err := range ls.Ascend() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(v) // -2, 3, 7, 7, 10
//	}
//
// Other sources:
//
//	lazysorted.Collect(maps.Keys(m))       // any iter.Seq
//	lazysorted.Keys(m)                     // map keys directly
//	lazysorted.NewFunc(people, byAgeThenName)
//
// # Custom and Fallible Orderings
//
// NewFunc takes a cmp.Compare-style comparator. NewCompareFunc additionally
// lets the comparator fail; the failure surfaces from the query that
// attempted the comparison, wrapped in *ErrCompare, and the List stays
// usable for everything already resolved.
//
// # Concurrency
//
// A List is single-writer: every query except Len may reorder the internal
// buffer. Wrap a shared List in a mutex, or give each goroutine its own.
//
// # Non-goals
//
// No persistence, no concurrent mutation, no stable ordering among
// equivalent elements, and no unbounded/streaming input: the element count
// is fixed at construction.
package lazysorted
