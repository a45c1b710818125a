// Package similarity: sentinel error set. Tests match via errors.Is.
package similarity

import "errors"

var (
	// ErrNilMatrix is returned when a nil factor matrix is passed.
	ErrNilMatrix = errors.New("similarity: nil factor matrix")

	// ErrQueryRange is returned when the query row index is outside
	// [0, rows).
	ErrQueryRange = errors.New("similarity: query index out of range")

	// ErrBadCount is returned when the requested count n is non-positive.
	ErrBadCount = errors.New("similarity: count must be > 0")
)
