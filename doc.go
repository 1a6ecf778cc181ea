// Package lvlist is an in-memory playground for singly linked lists and the
// two-pointer algorithms built on them.
//
// What is lvlist?
//
//	A small, generic, dependency-light library that brings together:
//		• Core primitives: Node[T], List[T] with head/tail/length tracking
//		• Positional operations: Get, AddAtHead, AddAtTail, AddAtIndex, DeleteAtIndex
//		• Cycle detection: Floyd's slow/fast cursors, cycle-entry location
//		• Structural edits: nth-from-end removal, in-place reversal
//		• Two-list queries: intersection by node identity
//		• Fixtures: deterministic lists, seeded random lists, cycles, Y-joins
//
// Under the hood, everything is organized under three subpackages:
//
//	core/       — Node, List and raw chain helpers
//	algorithms/ — HasCycle, CycleEntry, RemoveNthFromEnd, Intersection, Reverse
//	builder/    — BuildList, Sequence, Random, LinkTailTo, CrossLink
//
// Quick ASCII example:
//
//	1 -> 3 -> 2 -> 4 -> 5
//	     ^              |
//	     +--------------+
//
//	a chain whose tail re-enters at position 1: HasCycle reports true and
//	CycleEntry reports 1.
//
// The examples/ directory replays every scenario as a runnable program.
//
//	go get github.com/katalvlaran/lvlist
package lvlist
