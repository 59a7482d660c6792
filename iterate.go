package lazysorted

import "iter"

// Ascend returns an iterator over the elements in ascending order.
// Each range over it starts a fresh pass from the smallest element.
//
// Positions are resolved as the iteration reaches them: breaking out after
// k elements leaves later positions unresolved, so taking the top k of a
// large List costs far less than a full sort. A comparator failure is
// yielded as the final pair and ends the iteration.
//
// Example:
//
//	for v, err := range ls.Ascend() {
//	    if err != nil {
//	        return err
//	    }
//	    if v > threshold {
//	        break // Early termination keeps the rest unsorted
//	    }
//	    process(v)
//	}
func (l *List[T]) Ascend() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for k := 0; k < len(l.items); k++ {
			if err := l.resolve(k); err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(l.items[k], nil) {
				return
			}
		}
	}
}
