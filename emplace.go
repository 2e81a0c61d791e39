package dynarray

import "github.com/pkg/errors"

// PushBack appends v, growing the buffer when full, and returns the address
// of the stored element. Can fail only on the growth path: allocation, or a
// copy-relocation failure (in which case the array is unchanged).
func (a *Array[T]) PushBack(v T) (*T, error) {
	return a.Emplace(a.size, func() (T, error) { return v, nil })
}

// EmplaceBack appends an element produced by construct, the in-place
// construction analog: on the growth path the element is built directly in
// its final slot of the new buffer before anything is relocated. A
// construction failure leaves the array unchanged.
func (a *Array[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	return a.Emplace(a.size, construct)
}

// Insert places v at index, shifting elements [index, Len()) one slot
// right; index == Len() appends. It returns the address of the inserted
// element. An out-of-range index is a caller bug.
//
// When the buffer is full the whole sequence is relocated around the new
// element and a failure leaves the array unchanged. When inserting in place
// a failing shift destroys the newly extended trailing slot and re-signals:
// the array stays valid and leak-free but is not rolled back.
func (a *Array[T]) Insert(index int, v T) (*T, error) {
	return a.Emplace(index, func() (T, error) { return v, nil })
}

// Emplace is Insert with the element produced by construct. See Insert for
// position and failure semantics.
func (a *Array[T]) Emplace(index int, construct func() (T, error)) (*T, error) {
	assert(index >= 0 && index <= a.size, "Emplace: position out of range")
	var (
		p   *T
		err error
	)
	if a.size == a.data.capacity() {
		p, err = a.emplaceRealloc(index, construct)
	} else {
		p, err = a.emplaceInPlace(index, construct)
	}
	if err != nil {
		return nil, err
	}
	a.size++
	return p, nil
}

// PopBack destroys the last element and shrinks the length by one. Calling
// it on an empty array is a caller bug. Never fails.
func (a *Array[T]) PopBack() {
	assert(a.size > 0, "PopBack called on empty array")
	a.size--
	a.ops.destroyAt(a.data.index(a.size))
}

// Erase destroys the element at index, move-assigns every subsequent
// element one slot left, destroys the vacated final slot, and shrinks the
// length by one. An out-of-range index is a caller bug.
//
// Never fails when the element type's move cannot fail. A failing move
// mid-shift leaves the length unchanged and every slot valid, but the
// sequence partially shifted.
func (a *Array[T]) Erase(index int) error {
	assert(index >= 0 && index < a.size, "Erase: position out of range")
	a.ops.destroyAt(a.data.index(index))
	for i := index; i < a.size-1; i++ {
		if err := a.moveAssignSlot(a.data.index(i), a.data.index(i+1)); err != nil {
			return errors.Wrap(err, "shifting elements after erasure")
		}
	}
	a.size--
	a.ops.destroyAt(a.data.index(a.size))
	return nil
}

// emplaceRealloc grows into a fresh buffer of max(1, 2*cap). The new
// element is constructed first, directly in its final slot; the prefix
// [0, index) and suffix [index, size) are then relocated around it, each
// sub-range's failure cleaning up everything placed in the new buffer so
// far before re-signaling. The old buffer is not touched until relocation
// has fully succeeded, so any failure leaves the array unchanged (up to
// moved-from sources when a fallible move was the only capability).
func (a *Array[T]) emplaceRealloc(index int, construct func() (T, error)) (*T, error) {
	newCap := a.data.capacity() * 2
	if newCap == 0 {
		newCap = 1
	}
	nb, err := newRawBuffer[T](newCap)
	if err != nil {
		return nil, err
	}
	v, err := construct()
	if err != nil {
		nb.release()
		return nil, errors.Wrap(err, "constructing element")
	}
	*nb.index(index) = v
	if err := a.relocateRange(&nb, 0, index, 0); err != nil {
		a.ops.destroyAt(nb.index(index))
		nb.release()
		return nil, errors.Wrap(err, "relocating elements before insertion")
	}
	if err := a.relocateRange(&nb, index, a.size, index+1); err != nil {
		for j := 0; j <= index; j++ {
			a.ops.destroyAt(nb.index(j))
		}
		nb.release()
		return nil, errors.Wrap(err, "relocating elements after insertion")
	}
	a.destroyRange(0, a.size)
	a.data.swap(&nb)
	nb.release()
	return a.data.index(index), nil
}

// emplaceInPlace inserts without reallocation. Appending constructs
// directly in the first dead slot. Inserting in the middle builds the value
// in a temporary, extends liveness by moving the last element into the
// trailing dead slot, shifts [index, size-1) one slot right in backward
// order so no slot is overwritten before being read, then move-assigns the
// temporary into place.
func (a *Array[T]) emplaceInPlace(index int, construct func() (T, error)) (*T, error) {
	if index == a.size {
		v, err := construct()
		if err != nil {
			return nil, errors.Wrap(err, "constructing element")
		}
		p := a.data.index(a.size)
		*p = v
		return p, nil
	}
	tmp, err := construct()
	if err != nil {
		return nil, errors.Wrap(err, "constructing element")
	}
	trailing := a.data.index(a.size)
	last, err := a.ops.moveOut(a.data.index(a.size - 1))
	if err != nil {
		a.ops.destroyAt(&tmp)
		return nil, errors.Wrap(err, "shifting elements for insertion")
	}
	*trailing = last
	for i := a.size - 1; i > index; i-- {
		if err := a.moveAssignSlot(a.data.index(i), a.data.index(i-1)); err != nil {
			a.ops.destroyAt(trailing)
			a.ops.destroyAt(&tmp)
			return nil, errors.Wrap(err, "shifting elements for insertion")
		}
	}
	if err := a.moveAssignSlot(a.data.index(index), &tmp); err != nil {
		a.ops.destroyAt(trailing)
		a.ops.destroyAt(&tmp)
		return nil, errors.Wrap(err, "shifting elements for insertion")
	}
	return a.data.index(index), nil
}
