// Package dynarray implements a generic dynamic array built on manually
// managed element slots.
//
// # Overview
//
// A dynamic array (resizable vector) stores elements contiguously and grows
// by doubling its capacity. Unlike a plain Go slice, dynarray separates
// "memory that exists" from "objects that are alive": slots in [0, Len())
// hold live elements, slots in [Len(), Cap()) are dead storage that is never
// read, written, or destroyed as an object. This makes the container correct
// for element types that:
//
//   - hold external resources and need an explicit destroy step
//   - are expensive to copy, or must never be copied at all
//   - have construction or copying that can fail
//
// # Basic Usage
//
//	a := dynarray.New[int](dynarray.Ops[int]{})
//	defer a.Release() // Run destroy hooks and drop the buffer
//
//	a.PushBack(1)
//	a.PushBack(2)
//	p, err := a.At(0) // Checked access
//	v := *a.Get(1)    // Unchecked access
//
//	a.Insert(1, 9) // [1 9 2]
//	a.Erase(1)     // [1 2]
//
// # Element Capabilities
//
// The Ops table supplied at construction declares how elements are
// default-constructed, copied, moved, and destroyed. The zero Ops value
// describes a trivial type: zero-value construction, bitwise copy, bitwise
// move, no destroy hook. See Ops for the full contract.
//
// The declared capabilities decide how elements are relocated when the
// buffer grows: by move when the move cannot fail (or the type cannot be
// copied), by copy otherwise, so that a failure mid-relocation leaves the
// original elements untouched.
//
// # Failure Guarantees
//
// Every mutating operation documents one of three tiers:
//
//   - no-throw: the operation never fails (PopBack, Clear, Swap, MoveAssign)
//   - strong: on failure the array is exactly as it was before the call
//     (Reserve and growth for copy-relocated types, Assign's reallocating
//     branch, Clone with respect to the source)
//   - basic: on failure the array stays valid and leak-free but may be
//     partially modified (in-place Insert, in-place Assign, Erase)
//
// # Contract Violations
//
// Calling Front, Back, Get, or PopBack on an invalid index or an empty
// array, and passing an out-of-range position to Insert, Emplace, or Erase,
// are caller bugs, not recoverable errors. They panic. Building with the
// dynarray_nochecks tag compiles the checks out.
//
// # Thread Safety
//
// Not goroutine-safe. An Array has exactly one owner; concurrent access
// must be serialized by the caller.
package dynarray
