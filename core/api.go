// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and iteration over a List.
// Policy:
//   - No mutation here.
//   - Iteration is bounded by the length counter, so a hand-made cycle never
//     turns a read into an endless loop.

package core

import (
	"fmt"
	"iter"
)

// Len returns the number of nodes owned by l.
// Complexity: O(1).
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether l holds no nodes.
// Complexity: O(1).
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Head returns the first node, or nil for an empty list.
// The node is borrowed: algorithms may traverse from it, and the head-based
// functions in package algorithms may relink it (see SetHead).
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil for an empty list.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// All yields (index, value) pairs from head, visiting at most Len() nodes.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		cur := l.head
		for i := 0; i < l.length && cur != nil; i++ {
			if !yield(i, cur.Val) {
				return
			}
			cur = cur.Next
		}
	}
}

// Values returns a snapshot of the values in order, at most Len() of them.
// Complexity: O(n).
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for _, v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as its values, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
