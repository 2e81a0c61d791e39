package dynarray

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		index int
		value int
		want  []int
	}{
		{"front", []int{2, 3}, 0, 1, []int{1, 2, 3}},
		{"middle", []int{1, 3}, 1, 2, []int{1, 2, 3}},
		{"back (append)", []int{1, 2}, 2, 3, []int{1, 2, 3}},
		{"into empty", nil, 0, 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int](Ops[int]{})
			pushAll(t, a, tt.start...)

			p, err := a.Insert(tt.index, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.value, *p)
			require.Same(t, a.Get(tt.index), p)
			require.Equal(t, tt.want, contents(a))
		})
	}
}

func TestInsertInPlace(t *testing.T) {
	// spare capacity forces the non-reallocating path
	a := New[int](Ops[int]{})
	require.NoError(t, a.Reserve(8))
	pushAll(t, a, 1, 2, 3, 4)
	addr := a.Get(0)

	_, err := a.Insert(2, 99)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 99, 3, 4}, contents(a))
	require.Same(t, addr, a.Get(0), "no reallocation happened")
	require.Equal(t, 8, a.Cap())
}

func TestInsertGrowth(t *testing.T) {
	// full buffer forces the reallocating path
	a := New[int](Ops[int]{})
	pushAll(t, a, 1, 2, 3, 4)
	require.Equal(t, a.Cap(), a.Len())

	_, err := a.Insert(1, 99)
	require.NoError(t, err)
	require.Equal(t, []int{1, 99, 2, 3, 4}, contents(a))
	require.Equal(t, 8, a.Cap())
}

func TestInsertEraseRoundTrip(t *testing.T) {
	for index := 0; index <= 4; index++ {
		a := New[int](Ops[int]{})
		pushAll(t, a, 10, 20, 30, 40)
		before := contents(a)

		_, err := a.Insert(index, 99)
		require.NoError(t, err)
		require.NoError(t, a.Erase(index))
		require.Equal(t, before, contents(a), "insert(%d)+erase(%d)", index, index)
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"front", 0, []int{2, 3, 4}},
		{"middle", 1, []int{1, 3, 4}},
		{"back", 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int](Ops[int]{})
			pushAll(t, a, 1, 2, 3, 4)

			require.NoError(t, a.Erase(tt.index))
			require.Equal(t, tt.want, contents(a))
		})
	}
}

func TestPositionContractViolations(t *testing.T) {
	a := New[int](Ops[int]{})
	pushAll(t, a, 1, 2)

	require.Panics(t, func() { _, _ = a.Insert(3, 9) })
	require.Panics(t, func() { _, _ = a.Insert(-1, 9) })
	require.Panics(t, func() { _ = a.Erase(2) })
	require.Panics(t, func() { _ = a.Erase(-1) })
}

func TestEmplaceBack(t *testing.T) {
	a := New[int](Ops[int]{})

	p, err := a.EmplaceBack(func() (int, error) { return 42, nil })
	require.NoError(t, err)
	require.Equal(t, 42, *p)

	boom := errors.New("constructor failed")
	_, err = a.EmplaceBack(func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{42}, contents(a), "failed construction changes nothing")
	require.Equal(t, 1, a.Len())
}

func TestEmplaceConstructionFailure(t *testing.T) {
	boom := errors.New("constructor failed")

	t.Run("in-place path", func(t *testing.T) {
		a := New[int](Ops[int]{})
		require.NoError(t, a.Reserve(4))
		pushAll(t, a, 1, 2)

		_, err := a.Emplace(1, func() (int, error) { return 0, boom })
		require.ErrorIs(t, err, boom)
		require.Equal(t, []int{1, 2}, contents(a))
	})

	t.Run("growth path", func(t *testing.T) {
		a := New[int](Ops[int]{})
		pushAll(t, a, 1, 2)
		require.Equal(t, a.Cap(), a.Len())
		capBefore := a.Cap()

		_, err := a.Emplace(1, func() (int, error) { return 0, boom })
		require.ErrorIs(t, err, boom)
		require.Equal(t, []int{1, 2}, contents(a))
		require.Equal(t, capBefore, a.Cap(), "failed growth discards the new buffer")
	})
}
