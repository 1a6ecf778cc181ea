// Package builder provides deterministic fixture construction for lvlist:
// lists from values, seeded random lists, and the two deliberate structural
// defects the algorithms are tested against (a tail wired back into its own
// chain, and a tail wired into another list).
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildList:        creates a core.List from values and applies
//     Constructors in order.
//   - Generators:
//     – Sequence(n):      ints 1..n.
//     – Random(n):        n ints drawn from the configured RNG and range.
//   - Constructors / linkers:
//     – LinkTailTo(pos):  tail.Next = node at pos (cycle fixture).
//     – CrossLink(a,b,p): b's tail.Next = a's node at p (intersection fixture).
//   - Configuration primitives:
//     – BuilderOption:    WithSeed, WithRand, WithValueRange.
//
// Guarantees:
//
//   - Determinism: same inputs, options and seed ⇒ identical lists.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels; use errors.Is.
//   - Constructors never panic at runtime.
package builder
