// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil   (Random fails with ErrNeedRandSource until seeded)
//   • lo/hi = 0/99  (inclusive value range for Random)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the generators.
// It is passed by value (immutable to callers).
type builderConfig struct {
	rng *rand.Rand // nil means "no randomness"
	lo  int        // inclusive lower bound for Random values
	hi  int        // inclusive upper bound for Random values
}

const (
	defaultLo = 0
	defaultHi = 99
)

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,
		lo:  defaultLo,
		hi:  defaultHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
