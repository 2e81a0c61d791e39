package dynarray

import "github.com/pkg/errors"

// Array is a generic dynamic array over manually managed slots. It owns
// exactly one rawBuffer plus a logical size: slots [0, Len()) hold live
// elements, slots [Len(), Cap()) are dead storage. Every element
// construction and destruction is issued here; the buffer only provides
// addressed storage.
//
// Arrays are created by New, NewSize, Clone, or Move and must not be
// duplicated by plain assignment. Not goroutine-safe.
type Array[T any] struct {
	data rawBuffer[T]
	size int
	ops  Ops[T]
}

// New creates an empty array for elements with the given capabilities.
// The zero Ops value describes a trivial type.
func New[T any](ops Ops[T]) *Array[T] {
	return &Array[T]{ops: ops}
}

// NewSize creates an array holding n default-constructed elements. If
// allocation or a construction fails, everything built so far is destroyed
// and the error returned.
func NewSize[T any](n int, ops Ops[T]) (*Array[T], error) {
	a := New[T](ops)
	if err := a.Resize(n); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of slots in the owned buffer.
func (a *Array[T]) Cap() int {
	return a.data.capacity()
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// At returns the address of element i, or ErrIndexOutOfRange when i is
// outside [0, Len()).
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d with len %d", i, a.size)
	}
	return a.data.index(i), nil
}

// Get returns the address of element i without a recoverable bounds check.
// An out-of-range index is a caller bug.
func (a *Array[T]) Get(i int) *T {
	assert(i >= 0 && i < a.size, "Get: index out of range")
	return a.data.index(i)
}

// Front returns the address of the first element. Calling it on an empty
// array is a caller bug.
func (a *Array[T]) Front() *T {
	assert(a.size > 0, "Front called on empty array")
	return a.data.index(0)
}

// Back returns the address of the last element. Calling it on an empty
// array is a caller bug.
func (a *Array[T]) Back() *T {
	assert(a.size > 0, "Back called on empty array")
	return a.data.index(a.size - 1)
}

// Reserve grows the buffer to hold at least n slots. It is a no-op when n
// does not exceed the current capacity. On failure the array is unchanged
// (strong guarantee) provided relocation copied; for types relocated by
// move the relocation itself cannot fail, so only allocation can, before
// anything is touched.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.data.capacity() {
		return nil
	}
	nb, err := newRawBuffer[T](n)
	if err != nil {
		return err
	}
	if err := a.relocateRange(&nb, 0, a.size, 0); err != nil {
		nb.release()
		return err
	}
	a.destroyRange(0, a.size)
	a.data.swap(&nb)
	nb.release()
	return nil
}

// Resize sets the length to n, destroying trailing elements when shrinking
// and default-constructing new ones when growing. A construction failure
// destroys the partially built tail and leaves the length unchanged; any
// capacity growth that already happened is kept.
func (a *Array[T]) Resize(n int) error {
	assert(n >= 0, "Resize: negative length")
	switch {
	case n < a.size:
		a.destroyRange(n, a.size)
	case n > a.size:
		if n > a.data.capacity() {
			if err := a.Reserve(n); err != nil {
				return err
			}
		}
		for i := a.size; i < n; i++ {
			v, err := a.ops.defaultNew()
			if err != nil {
				a.destroyRange(a.size, i)
				return errors.Wrap(err, "default-constructing new elements")
			}
			*a.data.index(i) = v
		}
	}
	a.size = n
	return nil
}

// Clear destroys all live elements and sets the length to 0. The capacity
// is unchanged. Never fails.
func (a *Array[T]) Clear() {
	a.destroyRange(0, a.size)
	a.size = 0
}

// Release destroys all live elements and drops the buffer, the dynarray
// analog of end-of-scope teardown. The array is afterwards empty with
// capacity 0 and may be reused.
func (a *Array[T]) Release() {
	a.Clear()
	a.data.release()
}

// Clone creates an independent copy: a buffer sized to the current length
// with every element copy-constructed in order. A failing copy destroys the
// partial copy and abandons it; the source is never touched. Fails with
// ErrNotCopyable for NoCopy element types.
func (a *Array[T]) Clone() (*Array[T], error) {
	if a.ops.NoCopy {
		return nil, errors.Wrap(ErrNotCopyable, "Clone")
	}
	nb, err := newRawBuffer[T](a.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		v, err := a.ops.copyFrom(a.data.index(i))
		if err != nil {
			for j := 0; j < i; j++ {
				a.ops.destroyAt(nb.index(j))
			}
			nb.release()
			return nil, errors.Wrap(err, "copying elements")
		}
		*nb.index(i) = v
	}
	c := &Array[T]{ops: a.ops, size: a.size}
	c.data.moveFrom(&nb)
	return c, nil
}

// Move transfers buffer ownership and length into a fresh array in O(1).
// The source is left empty: length 0, no buffer. Never fails.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{ops: a.ops, size: a.size}
	m.data.moveFrom(&a.data)
	a.size = 0
	return m
}

// Swap exchanges contents with other in O(1). Never fails.
func (a *Array[T]) Swap(other *Array[T]) {
	if a == other {
		return
	}
	a.data.swap(&other.data)
	a.size, other.size = other.size, a.size
	a.ops, other.ops = other.ops, a.ops
}

// MoveAssign replaces the contents with src's by swapping in O(1); src ends
// up holding the previous contents. Never fails.
func (a *Array[T]) MoveAssign(src *Array[T]) {
	a.Swap(src)
}

// Assign replaces the contents with a copy of src's.
//
// When src does not fit in the current buffer, a full temporary copy is
// built and swapped in: if building it fails the array is unchanged
// (strong guarantee). When the capacity suffices, elements are copy-assigned
// in place, a larger source's tail copy-constructed into dead slots, a
// smaller source's excess destroyed: a failure partway leaves a valid mix
// of old and new elements (basic guarantee).
func (a *Array[T]) Assign(src *Array[T]) error {
	if a == src {
		return nil
	}
	if a.ops.NoCopy {
		return errors.Wrap(ErrNotCopyable, "Assign")
	}
	if src.size > a.data.capacity() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		a.Swap(tmp)
		tmp.Release()
		return nil
	}
	common := min(a.size, src.size)
	for i := 0; i < common; i++ {
		v, err := a.ops.copyFrom(src.data.index(i))
		if err != nil {
			return errors.Wrap(err, "copy-assigning elements")
		}
		a.ops.destroyAt(a.data.index(i))
		*a.data.index(i) = v
	}
	if src.size > a.size {
		for i := a.size; i < src.size; i++ {
			v, err := a.ops.copyFrom(src.data.index(i))
			if err != nil {
				a.destroyRange(a.size, i)
				return errors.Wrap(err, "copy-constructing tail elements")
			}
			*a.data.index(i) = v
		}
	} else {
		a.destroyRange(src.size, a.size)
	}
	a.size = src.size
	return nil
}

// relocateRange transfers live elements [from, to) into dst starting at
// dstOff, moving or copying per the declared capabilities. On failure the
// elements this call already placed in dst are destroyed before the error
// is returned; anything else in dst is the caller's to clean up.
func (a *Array[T]) relocateRange(dst *rawBuffer[T], from, to, dstOff int) error {
	byMove := a.ops.relocateByMove()
	for i := from; i < to; i++ {
		var (
			v   T
			err error
		)
		if byMove {
			v, err = a.ops.moveOut(a.data.index(i))
		} else {
			v, err = a.ops.copyFrom(a.data.index(i))
		}
		if err != nil {
			for j := from; j < i; j++ {
				a.ops.destroyAt(dst.index(dstOff + (j - from)))
			}
			return err
		}
		*dst.index(dstOff + (i - from)) = v
	}
	return nil
}

// destroyRange ends the lifetime of elements [from, to) in the owned
// buffer.
func (a *Array[T]) destroyRange(from, to int) {
	for i := from; i < to; i++ {
		a.ops.destroyAt(a.data.index(i))
	}
}

// moveAssignSlot move-assigns *src into *dst: the previous value of *dst
// is destroyed once the moved value is in hand, so a failing move leaves
// *dst untouched.
func (a *Array[T]) moveAssignSlot(dst, src *T) error {
	v, err := a.ops.moveOut(src)
	if err != nil {
		return err
	}
	a.ops.destroyAt(dst)
	*dst = v
	return nil
}
