package dynarray

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// rawBuffer owns a block of raw storage sized for a fixed number of element
// slots. It knows nothing about element lifetime: it never constructs or
// destroys anything, and slot contents are meaningless until the owner
// places a live element there.
//
// The backing storage is a typed slice rather than raw bytes so the GC sees
// correct pointer maps for pointerful T; slot addressing still goes through
// unsafe pointer math off the base address. The base is nil if and only if
// the capacity is 0 (the empty sentinel).
//
// A rawBuffer must not be duplicated: raw, possibly partially initialized
// memory cannot be copied safely without knowing which slots are live, so
// duplication is pushed up to the owner. Transfer happens via moveFrom and
// swap only.
type rawBuffer[T any] struct {
	mem  []T // keeps the block reachable; nil iff cap == 0
	base unsafe.Pointer
	cap  int
}

// newRawBuffer allocates raw storage for capacity slots. Capacity 0 yields
// the empty sentinel with no allocation. Fails with ErrAllocation if the
// byte size overflows or the runtime cannot satisfy the request.
func newRawBuffer[T any](capacity int) (b rawBuffer[T], err error) {
	if capacity == 0 {
		return rawBuffer[T]{}, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if capacity < 0 || (elemSize > 0 && capacity > math.MaxInt/elemSize) {
		return rawBuffer[T]{}, errors.Wrapf(ErrAllocation,
			"capacity %d with element size %d", capacity, elemSize)
	}
	// makeslice panics rather than returning an error when the runtime
	// refuses the request; surface that as ErrAllocation instead.
	defer func() {
		if r := recover(); r != nil {
			b = rawBuffer[T]{}
			err = errors.Wrapf(ErrAllocation, "allocating %d slots: %v", capacity, r)
		}
	}()
	mem := make([]T, capacity)
	return rawBuffer[T]{
		mem:  mem,
		base: unsafe.Pointer(&mem[0]),
		cap:  capacity,
	}, nil
}

// capacity returns the number of element slots in the block.
func (b *rawBuffer[T]) capacity() int {
	return b.cap
}

// slot returns the address of a slot without touching its contents. The
// one-past-end offset is addressable (but must not be dereferenced), same
// as a past-the-end pointer.
func (b *rawBuffer[T]) slot(offset int) *T {
	assert(offset >= 0 && offset <= b.cap, "rawBuffer: slot offset out of range")
	var zero T
	return (*T)(unsafe.Add(b.base, uintptr(offset)*unsafe.Sizeof(zero)))
}

// index returns the address of an occupied-or-occupiable slot; unlike slot
// it rejects the one-past-end offset.
func (b *rawBuffer[T]) index(i int) *T {
	assert(i >= 0 && i < b.cap, "rawBuffer: index out of range")
	var zero T
	return (*T)(unsafe.Add(b.base, uintptr(i)*unsafe.Sizeof(zero)))
}

// moveFrom transfers the block from src in O(1), releasing any block held
// so far. src is reset to the empty sentinel. Never fails.
func (b *rawBuffer[T]) moveFrom(src *rawBuffer[T]) {
	if b == src {
		return
	}
	b.mem, b.base, b.cap = src.mem, src.base, src.cap
	src.mem, src.base, src.cap = nil, nil, 0
}

// swap exchanges the two blocks in O(1). Never fails.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.mem, other.mem = other.mem, b.mem
	b.base, other.base = other.base, b.base
	b.cap, other.cap = other.cap, b.cap
}

// release drops the block, returning the buffer to the empty sentinel.
// No-op when the capacity is 0.
func (b *rawBuffer[T]) release() {
	b.mem, b.base, b.cap = nil, nil, 0
}
