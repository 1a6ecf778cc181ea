// Package core defines the central Node and List types of lvlist: a generic,
// single-owner, singly linked list with positional access and the raw chain
// helpers used by the two-pointer algorithms in package algorithms.
//
// What:
//
//   - Node[T]: a value plus a single successor reference (Next). Fields are
//     exported so callers can deliberately cross-link two chains or wire a
//     tail back into its own chain (cycle fixtures).
//   - List[T]: owns head, tail and a length counter. Tail tracking keeps
//     AddAtTail O(1).
//
// Invariants:
//
//   - head == nil ⇔ tail == nil ⇔ Len() == 0.
//   - For Len() > 0, following Next from head Len()-1 times reaches tail,
//     and tail.Next == nil.
//   - A cycle introduced by hand (tail.Next = some node) suspends the second
//     invariant. Positional operations and iteration keep working because
//     they stop at the length counter as well as at a nil successor.
//
// Shared suffixes:
//
// Two lists may share nodes (see builder.CrossLink). Node values are shared,
// so a write through one list is visible through the other. Len, Tail and
// Values describe the list's own counters, which only that list's methods
// update: after a node is inserted or unlinked through the other list they
// may be stale. Reads never panic on a stale list. Get and DeleteAtIndex
// report ErrIndexOutOfRange when the chain ends before the counter, and
// Values stops at the first nil successor. ChainValues(l.Head()) always shows
// the live chain. Call Resync before relying on Len, Tail or AddAtTail again;
// appending through a stale tail would cut the other list's chain.
//
// Operations:
//
//   - Get(index)                 O(n)  ErrIndexOutOfRange outside [0, Len)
//   - AddAtHead / Prepend        O(1)
//   - AddAtTail                  O(1)
//   - AddAtIndex(index, v)       O(n)  rejected when index > Len
//   - DeleteAtIndex(index)       O(n)  rejected outside [0, Len)
//   - SetHead(head)              O(n)  re-adopts a chain, ErrCyclicChain on a loop
//   - Resync()                   O(n)  SetHead(Head()), recounts tail and length
//
// Errors:
//
//   - ErrIndexOutOfRange  index outside the accepted range; the list is untouched
//   - ErrCyclicChain      SetHead or WithHead was given a chain containing a cycle
//
// Concurrency:
//
//	None. A List is a single mutable aggregate; callers serialize access.
package core
