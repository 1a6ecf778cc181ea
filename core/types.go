// SPDX-License-Identifier: MIT
// Package: lvlist/core
//
// types.go — Node, List, list options and sentinel errors.

package core

import "errors"

// Sentinel errors for core list operations.
var (
	// ErrIndexOutOfRange indicates a positional operation referenced an index
	// outside the range it accepts. The list is left unchanged.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrCyclicChain indicates a chain handed to SetHead (or WithHead) loops
	// back on itself, so tail and length cannot be derived from it.
	ErrCyclicChain = errors.New("core: chain contains a cycle")
)

// Node is a single chain element: a value and the reference to its successor.
// A nil Next marks the end of the chain.
type Node[T any] struct {
	// Val is the payload carried by this node.
	Val T

	// Next is the successor node, or nil for the last node.
	Next *Node[T]
}

// List is a singly linked list with head and tail tracking.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *Node[T] // first node or nil
	tail   *Node[T] // last node or nil
	length int      // number of nodes reachable from head
}

// Option configures a List at construction time.
type Option[T any] func(l *List[T])

// WithValues appends vals to the new list in order.
func WithValues[T any](vals ...T) Option[T] {
	return func(l *List[T]) {
		for _, v := range vals {
			l.AddAtTail(v)
		}
	}
}

// WithHead makes the new list adopt an existing chain starting at head.
// A cyclic chain is ignored and the list stays as it was before the option.
func WithHead[T any](head *Node[T]) Option[T] {
	return func(l *List[T]) {
		_ = l.SetHead(head) // cyclic input leaves l untouched
	}
}

// New creates a List and applies opts in order.
// Complexity: O(len(opts)) plus the cost of each option.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// FromSlice builds a List holding vals in order.
// Complexity: O(len(vals)).
func FromSlice[T any](vals []T) *List[T] {
	return New(WithValues(vals...))
}
