// Package builder provides validation helpers that enforce parameter
// contracts in constructors. Each returns a sentinel-wrapped error via
// builderErrorf when its precondition is violated.
package builder

// validateMin ensures got ≥ min, else ErrTooFewNodes.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewNodes, "got %d, need ≥ %d", got, min)
	}

	return nil
}

// validatePosition ensures 0 ≤ pos < length, else ErrPositionOutOfRange.
// Complexity: O(1).
func validatePosition(method string, pos, length int) error {
	if pos < 0 || pos >= length {
		return builderErrorf(method, ErrPositionOutOfRange, "pos=%d not in [0,%d)", pos, length)
	}

	return nil
}
