// SPDX-License-Identifier: MIT
// Package: lvlist/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a size parameter or an input list is smaller than
// the constructor requires (negative n, empty list to link from).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrPositionOutOfRange indicates a link target position outside [0, Len()).
var ErrPositionOutOfRange = errors.New("builder: position out of range")

// ErrNeedRandSource indicates that Random requires a non-nil *rand.Rand in the
// resolved configuration (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildList could not run a constructor (nil
// constructor, nil list argument).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel, e.g. "LinkTailTo: pos=9 not in [0,3): builder: position out of range".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
