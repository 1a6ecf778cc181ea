// Package algorithms implements cycle detection on singly linked chains.
//
// Complexity:
//
//   - HasCycle:        Time O(n), Memory O(1)
//   - HasCycleBounded: Time O(n), Memory O(1)
//   - CycleEntry:      Time O(n), Memory O(1)
package algorithms

import (
	"fmt"

	"github.com/katalvlaran/lvlist/core"
)

// HasCycle reports whether following Next from head ever revisits a node.
//
// A slow cursor moves one node per step and a fast cursor two. If the fast
// cursor (or its successor) runs off the end the chain terminates; if the two
// cursors reference the same node, the chain loops. The result does not
// depend on where the loop re-enters the chain.
func HasCycle[T any](head *core.Node[T]) bool {
	return meetingNode(head) != nil
}

// HasCycleBounded reports whether l's chain runs past its own length: a
// terminated chain of Len() nodes ends after exactly Len() steps, so one more
// reachable node means the tail was wired back into the chain.
//
// It trusts the length counter, so it only detects cycles introduced after
// the nodes were counted (the usual tail.Next = node fixture).
func HasCycleBounded[T any](l *core.List[T]) bool {
	if l == nil {
		return false
	}

	steps := 0
	for cur := l.Head(); cur != nil; cur = cur.Next {
		if steps > l.Len() {
			return true
		}
		steps++
	}

	return false
}

// CycleEntry returns the 0-based distance from head to the node where the
// loop begins, or ErrNoCycle if the chain terminates.
//
// Phase 1 finds a meeting node of the slow/fast cursors inside the loop.
// Phase 2 restarts one cursor at head; stepping both cursors one node at a
// time, they meet exactly at the entry node.
func CycleEntry[T any](head *core.Node[T]) (int, error) {
	meet := meetingNode(head)
	if meet == nil {
		return 0, fmt.Errorf("CycleEntry: %w", ErrNoCycle)
	}

	pos := 0
	for a, b := head, meet; a != b; a, b = a.Next, b.Next {
		pos++
	}

	return pos, nil
}

// CycleEntryNode returns the node where the loop begins, or nil if the chain
// terminates.
func CycleEntryNode[T any](head *core.Node[T]) *core.Node[T] {
	meet := meetingNode(head)
	if meet == nil {
		return nil
	}

	a, b := head, meet
	for a != b {
		a, b = a.Next, b.Next
	}

	return a
}

// meetingNode runs Floyd's walk and returns the node where the cursors meet,
// or nil when the fast cursor reaches the end.
func meetingNode[T any](head *core.Node[T]) *core.Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return slow
		}
	}

	return nil
}
