package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/builder"
	"github.com/katalvlaran/lvlist/core"
)

// sampleValues is the chain used by the cycle and intersection scenarios.
var sampleValues = []int{1, 3, 2, 4, 5, 10, 8, 12, 13}

// maxChainLen bounds the acyclic/cyclic sweeps in property-style tests.
const maxChainLen = 12

// cyclicSample returns sampleValues with the tail wired back to pos.
func cyclicSample(t *testing.T, pos int) *core.List[int] {
	t.Helper()
	l, err := builder.BuildList(sampleValues, builder.LinkTailTo[int](pos))
	require.NoError(t, err)

	return l
}

// sequence returns 1..n.
func sequence(t *testing.T, n int) *core.List[int] {
	t.Helper()
	l, err := builder.Sequence(n)
	require.NoError(t, err)

	return l
}
