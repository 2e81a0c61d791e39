package dynarray

import "iter"

// All returns an index/address iterator over the live elements, front to
// back. The addresses allow in-place mutation. Growing or shrinking the
// array during iteration invalidates the iterator.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data.index(i)) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements, front to back.
// Values are handed out as-is, without the element Copy hook; treat them as
// borrowed for resource-owning types.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.data.index(i)) {
				return
			}
		}
	}
}
