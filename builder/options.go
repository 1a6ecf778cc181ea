// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators and constructors themselves never panic.
//   • Seeding is explicit, via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueRange sets the inclusive range Random draws from.
// Panics if lo > hi.
func WithValueRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithValueRange(lo > hi)")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}
