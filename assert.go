//go:build !dynarray_nochecks

package dynarray

// assert panics on contract violations (caller bugs, not recoverable
// errors). Build with -tags dynarray_nochecks to compile the checks out.
func assert(cond bool, msg string) {
	if !cond {
		panic("dynarray: " + msg)
	}
}
