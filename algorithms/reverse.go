package algorithms

import (
	"fmt"

	"github.com/katalvlaran/lvlist/core"
)

// Reverse reverses the chain starting at head in place and returns the new
// head (the former last node). An empty chain yields nil and a single node
// is returned as is, both through the general loop.
//
// The chain must be acyclic.
// Complexity: O(n) time, O(1) space.
func Reverse[T any](head *core.Node[T]) *core.Node[T] {
	var reversed *core.Node[T]
	cur := head
	for cur != nil {
		next := cur.Next
		cur.Next = reversed
		reversed = cur
		cur = next
	}

	return reversed
}

// ReverseList reverses l in place; the old tail becomes the head.
// Returns core.ErrCyclicChain, leaving l unchanged, if l's tail was wired
// back into the chain.
func ReverseList[T any](l *core.List[T]) error {
	if HasCycle(l.Head()) {
		return fmt.Errorf("ReverseList: %w", core.ErrCyclicChain)
	}
	if err := l.SetHead(Reverse(l.Head())); err != nil {
		return fmt.Errorf("ReverseList: %w", err)
	}

	return nil
}
