// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvlist/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and a structural invariant check.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/core"
)

// Common values used across core tests.
const (
	Val1  = 1
	Val2  = 2
	Val3  = 3
	Val4  = 4
	Val5  = 5
	Val99 = 99
)

// sampleValues is the sequence used by the cycle and intersection scenarios.
var sampleValues = []int{1, 3, 2, 4, 5, 10, 8, 12, 13}

// newSample returns a fresh list holding sampleValues.
func newSample() *core.List[int] {
	return core.FromSlice(sampleValues)
}

// requireWellFormed walks l and checks the head/tail/length invariant.
func requireWellFormed[T any](t *testing.T, l *core.List[T]) {
	t.Helper()

	if l.Len() == 0 {
		require.Nil(t, l.Head(), "empty list must have nil head")
		require.Nil(t, l.Tail(), "empty list must have nil tail")
		return
	}

	require.NotNil(t, l.Head())
	require.NotNil(t, l.Tail())

	cur := l.Head()
	for i := 0; i < l.Len()-1; i++ {
		require.NotNil(t, cur.Next, "chain ended early at %d of %d", i, l.Len())
		cur = cur.Next
	}
	require.Same(t, l.Tail(), cur, "walking Len()-1 steps must reach tail")
	require.Nil(t, l.Tail().Next, "tail must terminate the chain")
}

// requireUnreachable walks Len()+1 links from head, enough to close any loop
// hanging off the tail, and fails if victim shows up.
func requireUnreachable[T any](t *testing.T, l *core.List[T], victim *core.Node[T]) {
	t.Helper()

	cur := l.Head()
	for i := 0; i <= l.Len() && cur != nil; i++ {
		require.NotSame(t, victim, cur, "deleted node reachable at step %d", i)
		cur = cur.Next
	}
}
