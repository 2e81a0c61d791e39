package dynarray

import "github.com/pkg/errors"

var (
	// ErrAllocation is returned when slot storage cannot be allocated,
	// either because the byte size overflows or the runtime refuses the
	// request. Any operation that grows the buffer can return it.
	ErrAllocation = errors.New("dynarray: allocation failure")

	// ErrIndexOutOfRange is returned by checked access (At) when the index
	// is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrNotCopyable is returned by Clone and Assign when the element type
	// declares NoCopy. Go cannot reject these calls at compile time, and a
	// silent bitwise copy would duplicate exclusive ownership.
	ErrNotCopyable = errors.New("dynarray: element type is not copyable")
)
