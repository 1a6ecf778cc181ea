// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildList(vals, cons...). Creates the list, runs cons in order.
//   - Generators (Sequence, Random) resolve BuilderOptions into a builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.
//   - Safety: never panic at runtime; return sentinel-wrapped errors.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlist/core"
)

// File-local method tags for error context.
const (
	methodSequence   = "Sequence"
	methodRandom     = "Random"
	methodLinkTailTo = "LinkTailTo"
	methodCrossLink  = "CrossLink"
)

// Constructor applies a deterministic structural mutation to a list.
// Constructors validate parameters early and return sentinel errors.
type Constructor[T any] func(l *core.List[T]) error

// BuildList creates a core.List holding vals and applies all constructors in
// order. Any constructor error is wrapped with "BuildList: %w" and returned
// immediately; no partial cleanup is attempted.
// Complexity: O(len(vals)) plus the cost of each constructor.
func BuildList[T any](vals []T, cons ...Constructor[T]) (*core.List[T], error) {
	l := core.FromSlice(vals)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildList: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l); err != nil {
			return nil, fmt.Errorf("BuildList: %w", err)
		}
	}

	return l, nil
}

// Sequence returns the list 1, 2, ..., n. n = 0 yields an empty list.
// Returns ErrTooFewNodes for negative n.
// Complexity: O(n).
func Sequence(n int) (*core.List[int], error) {
	if err := validateMin(methodSequence, n, 0); err != nil {
		return nil, err
	}

	l := core.New[int]()
	for i := 1; i <= n; i++ {
		l.AddAtTail(i)
	}

	return l, nil
}

// Random returns n ints drawn uniformly from the configured inclusive range.
// Returns ErrTooFewNodes for negative n and ErrNeedRandSource when no RNG was
// configured (see WithSeed, WithRand).
// Complexity: O(n).
func Random(n int, opts ...BuilderOption) (*core.List[int], error) {
	if err := validateMin(methodRandom, n, 0); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandom, ErrNeedRandSource, "n=%d", n)
	}

	l := core.New[int]()
	for i := 0; i < n; i++ {
		l.AddAtTail(drawInt(cfg.rng, cfg.lo, cfg.hi))
	}

	return l, nil
}

// drawInt returns a uniform int in [lo, hi]. The span is computed in uint64
// so that ranges wider than math.MaxInt do not overflow.
func drawInt(r *rand.Rand, lo, hi int) int {
	span := uint64(hi) - uint64(lo) + 1
	switch {
	case span == 0:
		// [MinInt64, MaxInt64]: every 64-bit pattern is in range
		return int(r.Uint64())
	case span <= math.MaxInt63:
		return int(uint64(lo) + uint64(r.Int63n(int64(span))))
	}
	for {
		// span > 2^63, so each draw is accepted with probability > 1/2
		if x := r.Uint64(); x < span {
			return int(uint64(lo) + x)
		}
	}
}

// LinkTailTo returns a Constructor that wires the list's tail back to the node
// at pos, creating a cycle whose entry sits pos nodes from head. pos = Len()-1
// makes the tail point to itself.
//
// The list keeps its length; positional operations stay bounded by it.
// Errors: ErrTooFewNodes on an empty list, ErrPositionOutOfRange for pos
// outside [0, Len()).
// Complexity: O(pos).
func LinkTailTo[T any](pos int) Constructor[T] {
	return func(l *core.List[T]) error {
		if err := validateMin(methodLinkTailTo, l.Len(), 1); err != nil {
			return err
		}
		if err := validatePosition(methodLinkTailTo, pos, l.Len()); err != nil {
			return err
		}
		l.Tail().Next = core.NodeAt(l.Head(), pos)

		return nil
	}
}

// CrossLink wires b's tail to a's node at pos, so both lists share a's suffix
// from that node on, and returns the shared node. b is resynced to own the
// combined chain. Values written through either list are visible through the
// other; after inserting or unlinking through one of them, call Resync on the
// other before relying on its Len, Tail or AddAtTail (see package core).
//
// Errors: ErrConstructFailed on nil lists or a cyclic a (b keeps its previous
// tail link), ErrTooFewNodes if b is empty, ErrPositionOutOfRange for pos
// outside [0, a.Len()).
// Complexity: O(pos + len(b) + len(a)-pos).
func CrossLink[T any](a, b *core.List[T], pos int) (*core.Node[T], error) {
	if a == nil || b == nil {
		return nil, builderErrorf(methodCrossLink, ErrConstructFailed, "nil list")
	}
	if err := validateMin(methodCrossLink, b.Len(), 1); err != nil {
		return nil, err
	}
	if err := validatePosition(methodCrossLink, pos, a.Len()); err != nil {
		return nil, err
	}

	shared := core.NodeAt(a.Head(), pos)
	oldTail := b.Tail()
	prevNext := oldTail.Next
	oldTail.Next = shared
	if err := b.Resync(); err != nil {
		// a is cyclic; restore b's own link, which may be a loop of its own
		oldTail.Next = prevNext
		return nil, builderErrorf(methodCrossLink, ErrConstructFailed, "resync: %v", err)
	}

	return shared, nil
}
