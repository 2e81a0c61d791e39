package dynarray_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/dynarray"
)

// BenchmarkPushBack measures amortized append cost across growth cycles
func BenchmarkPushBack(b *testing.B) {
	sizes := []int{100, 10000, 1000000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a := dynarray.New[int64](dynarray.Ops[int64]{})
				for j := 0; j < size; j++ {
					a.PushBack(int64(j))
				}
				a.Release()
			}
		})
	}
}

// BenchmarkPushBackVsBuiltin compares against the builtin append
func BenchmarkPushBackVsBuiltin(b *testing.B) {
	const n = 10000

	b.Run("dynarray", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := dynarray.New[int64](dynarray.Ops[int64]{})
			for j := 0; j < n; j++ {
				a.PushBack(int64(j))
			}
			a.Release()
		}
	})

	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int64
			for j := 0; j < n; j++ {
				s = append(s, int64(j))
			}
			_ = s
		}
	})
}

// BenchmarkPushBackReserved measures append with growth pre-paid
func BenchmarkPushBackReserved(b *testing.B) {
	const n = 10000

	for i := 0; i < b.N; i++ {
		a := dynarray.New[int64](dynarray.Ops[int64]{})
		a.Reserve(n)
		for j := 0; j < n; j++ {
			a.PushBack(int64(j))
		}
		a.Release()
	}
}

// BenchmarkGet measures unchecked random access
func BenchmarkGet(b *testing.B) {
	const n = 4096
	a := dynarray.New[int64](dynarray.Ops[int64]{})
	for j := 0; j < n; j++ {
		a.PushBack(int64(j))
	}
	defer a.Release()

	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		sum += *a.Get(i & (n - 1))
	}
	_ = sum
}

// BenchmarkInsertFront measures the worst-case positional insert
func BenchmarkInsertFront(b *testing.B) {
	const n = 1000

	for i := 0; i < b.N; i++ {
		a := dynarray.New[int64](dynarray.Ops[int64]{})
		for j := 0; j < n; j++ {
			a.Insert(0, int64(j))
		}
		a.Release()
	}
}

// BenchmarkEraseFront measures the worst-case positional erase
func BenchmarkEraseFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := dynarray.New[int64](dynarray.Ops[int64]{})
		for j := 0; j < 1000; j++ {
			a.PushBack(int64(j))
		}
		b.StartTimer()

		for !a.IsEmpty() {
			a.Erase(0)
		}
		a.Release()
	}
}

// BenchmarkRelocationPolicy compares move-based and copy-based growth
func BenchmarkRelocationPolicy(b *testing.B) {
	type payload struct {
		buf [64]byte
	}

	copyOps := dynarray.Ops[payload]{
		Copy: func(p *payload) (payload, error) { return *p, nil },
		Move: func(p *payload) (payload, error) { v := *p; *p = payload{}; return v, nil },
		// NothrowMove deliberately unset: relocation copies
	}
	moveOps := dynarray.Ops[payload]{}

	run := func(b *testing.B, ops dynarray.Ops[payload]) {
		for i := 0; i < b.N; i++ {
			a := dynarray.New[payload](ops)
			for j := 0; j < 1000; j++ {
				a.PushBack(payload{})
			}
			a.Release()
		}
	}

	b.Run("copy-relocation", func(b *testing.B) { run(b, copyOps) })
	b.Run("move-relocation", func(b *testing.B) { run(b, moveOps) })
}
