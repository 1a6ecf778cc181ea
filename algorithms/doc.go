// Package algorithms implements the classic two-pointer algorithms on
// singly linked chains of core.Node.
//
// It provides free-function implementations of:
//
//   - Cycle detection
//     – HasCycle (Floyd's slow/fast cursors)
//     – HasCycleBounded (walk bounded by a List's length counter)
//     – CycleEntry / CycleEntryNode (two-phase entry-point location)
//
//   - Structural edits
//     – RemoveNthFromEnd (lookahead + trailing cursor)
//     – Reverse (iterative, in place)
//
//   - Two-list queries
//     – Intersection (redirect technique, O(1) space)
//     – IntersectionBySet (identity-keyed set, O(n) space fallback)
//
// Functions take a head *core.Node and return a head or a node: a chain does
// not need an owning core.List. The *List variants (ReverseList,
// RemoveNthFromEndList) keep a List's tail and length in sync.
//
// Absent results are explicit: nil for "no node", ErrNoCycle for "no cycle
// entry", ErrCountOutOfRange for a rejected removal. Nothing panics.
//
// Only the cycle family accepts cyclic input. RemoveNthFromEnd, Reverse and
// the intersection functions require acyclic chains.
package algorithms
