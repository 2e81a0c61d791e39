//go:build dynarray_nochecks

package dynarray

func assert(bool, string) {}
