// Package core: positional List operations.
//
// Every walk below stops at the length counter or at a nil successor,
// whichever comes first. The counter keeps a deliberately wired cycle from
// looping forever; the nil check keeps a counter made stale by relinking
// through another list from dereferencing past the end of the chain.

package core

import "fmt"

// Get returns the value at zero-based index.
// Returns ErrIndexOutOfRange if index < 0 or index >= Len().
// Complexity: O(n).
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.length {
		return zero, fmt.Errorf("Get(%d) on length %d: %w", index, l.length, ErrIndexOutOfRange)
	}

	n := l.nodeAt(index)
	if n == nil {
		return zero, fmt.Errorf("Get(%d): chain ends before length %d: %w", index, l.length, ErrIndexOutOfRange)
	}

	return n.Val, nil
}

// AddAtHead links a new node holding v before the current head.
// Complexity: O(1).
func (l *List[T]) AddAtHead(v T) {
	n := &Node[T]{Val: v, Next: l.head}
	l.head = n
	if l.tail == nil {
		// first node is both ends
		l.tail = n
	}
	l.length++
}

// Prepend is AddAtHead under the name used by stack-like callers.
func (l *List[T]) Prepend(v T) {
	l.AddAtHead(v)
}

// AddAtTail links a new node holding v after the current tail.
// Complexity: O(1).
func (l *List[T]) AddAtTail(v T) {
	n := &Node[T]{Val: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.Next = n
		l.tail = n
	}
	l.length++
}

// AddAtIndex inserts v so that it ends up at position index.
//
//   - index > Len():  rejected with ErrIndexOutOfRange, list untouched.
//   - index <= 0:     same as AddAtHead.
//   - index == Len(): same as AddAtTail.
//   - otherwise:      spliced after the node at index-1.
//
// Complexity: O(n).
func (l *List[T]) AddAtIndex(index int, v T) error {
	switch {
	case index > l.length:
		return fmt.Errorf("AddAtIndex(%d) on length %d: %w", index, l.length, ErrIndexOutOfRange)
	case index <= 0:
		l.AddAtHead(v)
		return nil
	case index == l.length:
		l.AddAtTail(v)
		return nil
	}

	prev := l.nodeAt(index - 1)
	if prev == nil {
		return fmt.Errorf("AddAtIndex(%d): chain ends before length %d: %w", index, l.length, ErrIndexOutOfRange)
	}
	prev.Next = &Node[T]{Val: v, Next: prev.Next}
	l.length++

	return nil
}

// DeleteAtIndex unlinks the node at index.
// Returns ErrIndexOutOfRange, leaving the list untouched, if index is outside
// [0, Len()) or the chain ends before index.
//
// On a list whose tail was wired back into the chain, a back-reference to the
// deleted node moves to its successor, and a node that pointed to itself
// leaves no loop behind. The deleted node is unreachable from head afterwards.
// Complexity: O(n).
func (l *List[T]) DeleteAtIndex(index int) error {
	if index < 0 || index >= l.length {
		return fmt.Errorf("DeleteAtIndex(%d) on length %d: %w", index, l.length, ErrIndexOutOfRange)
	}

	if index == 0 {
		victim := l.head
		next := successor(victim)
		l.head = next
		l.length--
		if l.length == 0 || l.head == nil {
			l.head, l.tail, l.length = nil, nil, 0
			return nil
		}
		if l.tail.Next == victim {
			l.tail.Next = next
		}
		return nil
	}

	prev := l.nodeAt(index - 1)
	if prev == nil || prev.Next == nil {
		return fmt.Errorf("DeleteAtIndex(%d): chain ends before length %d: %w", index, l.length, ErrIndexOutOfRange)
	}
	victim := prev.Next
	next := successor(victim)
	prev.Next = next
	if victim == l.tail {
		l.tail = prev
	}
	if l.tail.Next == victim {
		l.tail.Next = next
	}
	l.length--

	return nil
}

// successor is n.Next, except that a self-loop has no successor.
func successor[T any](n *Node[T]) *Node[T] {
	if n.Next == n {
		return nil
	}

	return n.Next
}

// Clear drops every node. Node links are left as they are: a suffix shared
// with another chain stays intact for that chain.
// Complexity: O(1).
func (l *List[T]) Clear() {
	l.head, l.tail, l.length = nil, nil, 0
}

// SetHead makes l own the chain starting at head, recomputing tail and length.
// It is the way back from the head-based functions in package algorithms,
// which return a new head after relinking nodes.
//
// Returns ErrCyclicChain, leaving l untouched, if the chain loops.
// Complexity: O(n) time, O(1) extra space.
func (l *List[T]) SetHead(head *Node[T]) error {
	if loops(head) {
		return fmt.Errorf("SetHead: %w", ErrCyclicChain)
	}

	l.head, l.tail, l.length = head, nil, 0
	for cur := head; cur != nil; cur = cur.Next {
		l.tail = cur
		l.length++
	}

	return nil
}

// Resync recounts tail and length from the current head. Call it before
// relying on Len, Tail, Values or AddAtTail after the chain was relinked
// through another list sharing a suffix with l.
//
// Returns ErrCyclicChain, leaving l untouched, if the chain loops.
// Complexity: O(n).
func (l *List[T]) Resync() error {
	return l.SetHead(l.head)
}

// nodeAt walks index steps from head, or returns nil if the chain ends first.
// Callers guarantee 0 <= index < length.
func (l *List[T]) nodeAt(index int) *Node[T] {
	cur := l.head
	for i := 0; i < index && cur != nil; i++ {
		cur = cur.Next
	}

	return cur
}
