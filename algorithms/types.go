// Package algorithms defines the sentinel errors shared by the chain algorithms.
package algorithms

import "errors"

var (
	// ErrNoCycle is returned by CycleEntry when the chain terminates.
	ErrNoCycle = errors.New("algorithms: no cycle")

	// ErrCountOutOfRange is returned by RemoveNthFromEndList when n is not in
	// [1, Len()]. The list is left unchanged.
	ErrCountOutOfRange = errors.New("algorithms: count out of range")
)
