package algorithms

import (
	"fmt"

	"github.com/katalvlaran/lvlist/core"
)

// RemoveNthFromEnd unlinks the n-th node counted from the end (n = 1 is the
// last node) and returns the head of the resulting chain.
//
// A lookahead cursor is first advanced n nodes from head:
//
//   - if the chain ends before n steps complete, n exceeds the chain length
//     and the chain is returned unchanged;
//   - if it ends exactly after n steps, the target is head itself and
//     head.Next is returned (nil for a single node with n = 1);
//   - otherwise lookahead and a trailing cursor advance in lockstep until
//     lookahead sits on the last node; the trailing cursor's successor is the
//     target and is spliced out.
//
// n <= 0 also returns the chain unchanged. The chain must be acyclic.
// Complexity: O(len) time, O(1) space, one pass.
func RemoveNthFromEnd[T any](head *core.Node[T], n int) *core.Node[T] {
	if head == nil || n <= 0 {
		return head
	}

	lead := head
	for i := 0; i < n; i++ {
		if lead == nil {
			// fewer than n nodes
			return head
		}
		lead = lead.Next
	}
	if lead == nil {
		// exactly n nodes: drop the head
		return head.Next
	}

	trail := head
	for lead.Next != nil {
		lead = lead.Next
		trail = trail.Next
	}
	trail.Next = trail.Next.Next

	return head
}

// RemoveNthFromEndList removes the n-th node from the end of l and resyncs
// l's head, tail and length.
//
// Returns ErrCountOutOfRange, leaving l unchanged, if n is not in [1, Len()].
// A list whose tail was wired back into itself is rejected by SetHead with
// core.ErrCyclicChain.
func RemoveNthFromEndList[T any](l *core.List[T], n int) error {
	if n <= 0 || n > l.Len() {
		return fmt.Errorf("RemoveNthFromEndList(n=%d) on length %d: %w", n, l.Len(), ErrCountOutOfRange)
	}
	if HasCycle(l.Head()) {
		return fmt.Errorf("RemoveNthFromEndList: %w", core.ErrCyclicChain)
	}

	if err := l.SetHead(RemoveNthFromEnd(l.Head(), n)); err != nil {
		return fmt.Errorf("RemoveNthFromEndList: %w", err)
	}

	return nil
}
