// SPDX-License-Identifier: MIT
// Package: lvlist/core
//
// chain.go — helpers over raw chains (a head *Node with no owning List).
//
// The algorithms package works on heads, not on Lists: a chain may be a
// suffix shared by two lists, or the result of relinking nodes in place.
// These helpers never allocate nodes and never modify links.

package core

// ChainLen counts the nodes reachable from head.
// The chain must be acyclic; use the algorithms package to check first when
// that is not known.
// Complexity: O(n).
func ChainLen[T any](head *Node[T]) int {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}

	return n
}

// ChainValues collects the values reachable from head, in order.
// The chain must be acyclic.
// Complexity: O(n).
func ChainValues[T any](head *Node[T]) []T {
	var out []T
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// NodeAt returns the node index steps after head, or nil if the chain ends
// first or index is negative. Safe on cyclic chains.
// Complexity: O(index).
func NodeAt[T any](head *Node[T], index int) *Node[T] {
	if index < 0 {
		return nil
	}
	cur := head
	for i := 0; i < index && cur != nil; i++ {
		cur = cur.Next
	}

	return cur
}

// loops reports whether the chain from head revisits a node (slow/fast walk).
func loops[T any](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}
