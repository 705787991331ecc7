package forward

import "iter"

// All adapts seq to a range-over-func iterator. Each range loop pulls its own
// fresh cursor, and breaking out of the loop simply stops pulling.
//
//	for n := range forward.All(forward.Range(0, 10)) {
//	    ...
//	}
func All[T any](seq Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		each(seq, yield)
	}
}

// Enumerate is like All but also yields each element's zero-based position.
func Enumerate[T any](seq Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		each(seq, func(v T) bool {
			if !yield(i, v) {
				return false
			}
			i++
			return true
		})
	}
}
