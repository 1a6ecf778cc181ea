package algorithms

import "github.com/katalvlaran/lvlist/core"

// Intersection returns the first node shared by the chains starting at a and
// b, compared by identity rather than value, or nil if they share none.
//
// Two cursors start at a and b and advance together. A cursor that runs off
// its chain is redirected to the other chain's head, so both travel
// len(a)+len(b) nodes at most: they meet on the shared node, or both become
// nil on the same step when there is none.
//
// Both chains must be acyclic.
// Complexity: O(m+n) time, O(1) space.
func Intersection[T any](a, b *core.Node[T]) *core.Node[T] {
	if a == nil || b == nil {
		return nil
	}

	p, q := a, b
	for p != q {
		if p == nil {
			p = b
		} else {
			p = p.Next
		}
		if q == nil {
			q = a
		} else {
			q = q.Next
		}
	}

	return p
}

// IntersectionBySet is the O(n)-space variant of Intersection: it records
// every node of a in an identity-keyed set, then returns the first node of b
// found in it, or nil.
//
// Both chains must be acyclic.
// Complexity: O(m+n) time, O(m) space.
func IntersectionBySet[T any](a, b *core.Node[T]) *core.Node[T] {
	seen := make(map[*core.Node[T]]struct{})
	for cur := a; cur != nil; cur = cur.Next {
		seen[cur] = struct{}{}
	}
	for cur := b; cur != nil; cur = cur.Next {
		if _, ok := seen[cur]; ok {
			return cur
		}
	}

	return nil
}
