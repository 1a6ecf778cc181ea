// Package builder_test contains functional tests for the builder package:
// generators, constructors, cross-linking and option validation.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/builder"
	"github.com/katalvlaran/lvlist/core"
)

var sample = []int{1, 3, 2, 4, 5, 10, 8, 12, 13}

// TestBuildList_NoConstructors returns a plain list of the values.
func TestBuildList_NoConstructors(t *testing.T) {
	l, err := builder.BuildList(sample)
	require.NoError(t, err)
	assert.Equal(t, sample, l.Values())
	assert.Nil(t, l.Tail().Next)
}

// TestBuildList_NilConstructor is rejected with ErrConstructFailed.
func TestBuildList_NilConstructor(t *testing.T) {
	_, err := builder.BuildList(sample, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestLinkTailTo covers every valid position and the rejected ones.
func TestLinkTailTo(t *testing.T) {
	for pos := range sample {
		l, err := builder.BuildList(sample, builder.LinkTailTo[int](pos))
		require.NoError(t, err, "pos %d", pos)
		assert.Same(t, core.NodeAt(l.Head(), pos), l.Tail().Next, "pos %d", pos)
		assert.Equal(t, len(sample), l.Len(), "length is kept")
	}

	tests := []struct {
		name string
		vals []int
		pos  int
		want error
	}{
		{name: "empty list", vals: nil, pos: 0, want: builder.ErrTooFewNodes},
		{name: "negative pos", vals: sample, pos: -1, want: builder.ErrPositionOutOfRange},
		{name: "pos at length", vals: sample, pos: len(sample), want: builder.ErrPositionOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildList(tc.vals, builder.LinkTailTo[int](tc.pos))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCrossLink reproduces the two-list scenario: [10,3,23] joined into
// [1,3,2,4,5,10,8,12,13] at position 2 (value 2).
func TestCrossLink(t *testing.T) {
	a := core.FromSlice(sample)
	b := core.FromSlice([]int{10, 3, 23})

	shared, err := builder.CrossLink(a, b, 2)
	require.NoError(t, err)
	require.NotNil(t, shared)
	assert.Equal(t, 2, shared.Val)

	assert.Equal(t, []int{10, 3, 23, 2, 4, 5, 10, 8, 12, 13}, b.Values())
	assert.Equal(t, 10, b.Len())
	assert.Same(t, a.Tail(), b.Tail(), "both lists end on the shared tail")

	// the suffix is aliased: a write through a is visible through b
	shared.Val = 99
	got, err := b.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 99, got)
}

// TestCrossLink_Errors covers argument validation.
func TestCrossLink_Errors(t *testing.T) {
	a := core.FromSlice(sample)

	_, err := builder.CrossLink(a, core.New[int](), 0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.CrossLink(a, core.FromSlice([]int{1}), len(sample))
	assert.ErrorIs(t, err, builder.ErrPositionOutOfRange)

	_, err = builder.CrossLink(nil, a, 0)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestCrossLink_CyclicTarget undoes the link when a loops.
func TestCrossLink_CyclicTarget(t *testing.T) {
	a, err := builder.BuildList(sample, builder.LinkTailTo[int](1))
	require.NoError(t, err)
	b := core.FromSlice([]int{7, 8})

	_, err = builder.CrossLink(a, b, 0)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Nil(t, b.Tail().Next)
	assert.Equal(t, []int{7, 8}, b.Values())
}

// TestCrossLink_CyclicTargetKeepsOwnLoop restores b's previous tail link,
// not nil, when the link is undone.
func TestCrossLink_CyclicTargetKeepsOwnLoop(t *testing.T) {
	a, err := builder.BuildList(sample, builder.LinkTailTo[int](1))
	require.NoError(t, err)
	b, err := builder.BuildList([]int{7, 8, 9}, builder.LinkTailTo[int](0))
	require.NoError(t, err)

	_, err = builder.CrossLink(a, b, 0)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Same(t, b.Head(), b.Tail().Next, "b's own loop survives")
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{7, 8, 9}, b.Values())
}

// TestCrossLink_SharedSuffixMutations changes the shared chain through a and
// checks what b reports before and after Resync.
func TestCrossLink_SharedSuffixMutations(t *testing.T) {
	setup := func(t *testing.T) (a, b *core.List[int]) {
		a = core.FromSlice([]int{1, 2, 3})
		b = core.FromSlice([]int{9})
		_, err := builder.CrossLink(a, b, 1)
		require.NoError(t, err)
		require.Equal(t, []int{9, 2, 3}, b.Values())
		return a, b
	}

	t.Run("AddAtTail through a", func(t *testing.T) {
		a, b := setup(t)
		a.AddAtTail(4)

		assert.Equal(t, []int{9, 2, 3, 4}, core.ChainValues(b.Head()))
		assert.Equal(t, 3, b.Len(), "b's counter is stale")
		assert.Equal(t, []int{9, 2, 3}, b.Values())

		require.NoError(t, b.Resync())
		assert.Equal(t, 4, b.Len())
		assert.Equal(t, []int{9, 2, 3, 4}, b.Values())
		assert.Same(t, a.Tail(), b.Tail())
		got, err := b.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 4, got)

		b.AddAtTail(5)
		require.NoError(t, a.Resync())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Values())
		assert.Same(t, a.Tail(), b.Tail())
	})

	t.Run("DeleteAtIndex through a", func(t *testing.T) {
		a, b := setup(t)
		require.NoError(t, a.DeleteAtIndex(2))

		assert.NotPanics(t, func() {
			_, err := b.Get(2)
			assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
		})
		assert.Equal(t, []int{9, 2}, b.Values())

		require.NoError(t, b.Resync())
		assert.Equal(t, 2, b.Len())
		assert.Same(t, a.Tail(), b.Tail())

		b.AddAtTail(7)
		assert.Equal(t, []int{9, 2, 7}, b.Values())
		assert.Equal(t, []int{1, 2, 7}, core.ChainValues(a.Head()))
		require.NoError(t, a.Resync())
		assert.Equal(t, 3, a.Len())
	})

	t.Run("AddAtIndex through a", func(t *testing.T) {
		a, b := setup(t)
		require.NoError(t, a.AddAtIndex(2, 50))

		got, err := b.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 50, got, "the splice is visible through b")
		assert.Equal(t, []int{9, 2, 50}, b.Values(), "bounded by b's stale counter")

		require.NoError(t, b.Resync())
		assert.Equal(t, 4, b.Len())
		assert.Equal(t, []int{9, 2, 50, 3}, b.Values())
		got, err = b.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})
}

// TestSequence covers sizes 0..n and the negative case.
func TestSequence(t *testing.T) {
	l, err := builder.Sequence(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())

	l, err = builder.Sequence(0)
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	_, err = builder.Sequence(-1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestRandom_Deterministic checks equal seeds give equal lists within range.
func TestRandom_Deterministic(t *testing.T) {
	const n, lo, hi = 50, -5, 5

	a, err := builder.Random(n, builder.WithSeed(42), builder.WithValueRange(lo, hi))
	require.NoError(t, err)
	b, err := builder.Random(n, builder.WithRand(rand.New(rand.NewSource(42))), builder.WithValueRange(lo, hi))
	require.NoError(t, err)

	assert.Equal(t, a.Values(), b.Values())
	assert.Equal(t, n, a.Len())
	for _, v := range a.Values() {
		assert.GreaterOrEqual(t, v, lo)
		assert.LessOrEqual(t, v, hi)
	}
}

// TestRandom_WideRanges draws from ranges whose width overflows int.
func TestRandom_WideRanges(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{name: "zero to max", lo: 0, hi: math.MaxInt},
		{name: "full range", lo: math.MinInt, hi: math.MaxInt},
		{name: "min to zero", lo: math.MinInt, hi: 0},
		{name: "min to minus one", lo: math.MinInt, hi: -1},
		{name: "top two", lo: math.MaxInt - 1, hi: math.MaxInt},
		{name: "single min", lo: math.MinInt, hi: math.MinInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const n = 64
			var l *core.List[int]
			require.NotPanics(t, func() {
				var err error
				l, err = builder.Random(n, builder.WithSeed(1), builder.WithValueRange(tc.lo, tc.hi))
				require.NoError(t, err)
			})
			require.Equal(t, n, l.Len())
			for _, v := range l.Values() {
				assert.GreaterOrEqual(t, v, tc.lo)
				assert.LessOrEqual(t, v, tc.hi)
			}

			again, err := builder.Random(n, builder.WithSeed(1), builder.WithValueRange(tc.lo, tc.hi))
			require.NoError(t, err)
			assert.Equal(t, l.Values(), again.Values())
		})
	}
}

// TestRandom_Errors covers the missing RNG and negative size.
func TestRandom_Errors(t *testing.T) {
	_, err := builder.Random(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Random(-1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestOptions_Panics checks option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithValueRange(3, 1) })
	assert.NotPanics(t, func() { builder.WithValueRange(1, 1) })
}
