package dynarray

// Ops declares the lifetime capabilities of an element type. Go has no
// constructors, destructors, or noexcept traits, so the capabilities a C++
// container would discover at compile time are declared explicitly here and
// supplied when the array is created.
//
// The zero Ops value describes a trivial type: zero-value construction,
// bitwise copy, bitwise move, no destroy hook. All of those are infallible.
//
// Contract for non-nil hooks:
//
//   - Copy must leave the source untouched, even on failure.
//   - Move must leave the source in a destructible (moved-from) state.
//     A type whose Move can return an error must leave NothrowMove false;
//     setting NothrowMove promises Move never fails and is what allows the
//     array to relocate by move while still giving the strong guarantee.
//   - Destroy must tolerate moved-from and zero values, the way Close on a
//     nil handle is tolerated.
//
// After Destroy runs (or immediately, when it is nil) the slot is zeroed so
// a dead slot holds no references the GC would have to keep alive.
type Ops[T any] struct {
	// New default-constructs an element (used by Resize growth and
	// NewSize). Nil means the zero value, which cannot fail.
	New func() (T, error)

	// Copy duplicates *src. Nil means bitwise copy, which cannot fail.
	Copy func(src *T) (T, error)

	// NoCopy marks the type as offering no copy capability at all.
	// Relocation then always moves, and Clone/Assign fail with
	// ErrNotCopyable.
	NoCopy bool

	// Move transfers the value out of *src. Nil means bitwise move: the
	// value is taken and the source slot zeroed, which cannot fail.
	Move func(src *T) (T, error)

	// NothrowMove declares that Move never returns an error.
	NothrowMove bool

	// Destroy releases resources held by *p. Nil means trivial.
	Destroy func(p *T)
}

// relocateByMove reports whether elements are moved rather than copied when
// they are transferred into a new buffer. Moving is chosen when the move is
// guaranteed not to fail, or when the type cannot be copied at all;
// otherwise copying keeps the source intact so a mid-relocation failure can
// roll back.
func (o *Ops[T]) relocateByMove() bool {
	return o.Move == nil || o.NothrowMove || o.NoCopy
}

// defaultNew constructs a default element.
func (o *Ops[T]) defaultNew() (T, error) {
	if o.New != nil {
		return o.New()
	}
	var zero T
	return zero, nil
}

// copyFrom duplicates *src. The caller is responsible for ensuring the type
// is copyable.
func (o *Ops[T]) copyFrom(src *T) (T, error) {
	if o.Copy != nil {
		return o.Copy(src)
	}
	return *src, nil
}

// moveOut transfers the value out of *src, leaving the slot moved-from.
func (o *Ops[T]) moveOut(src *T) (T, error) {
	if o.Move != nil {
		return o.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

// destroyAt ends the lifetime of the element in *p and zeroes the slot.
func (o *Ops[T]) destroyAt(p *T) {
	if o.Destroy != nil {
		o.Destroy(p)
	}
	var zero T
	*p = zero
}
