// Package projection: sentinel error set. Tests match via errors.Is.
package projection

import "errors"

var (
	// ErrBadRank is returned when the target dimension k is non-positive.
	ErrBadRank = errors.New("projection: target dimension must be > 0")

	// ErrRankExceedsCols is returned by Fit when k >= d: a projection must
	// reduce dimensionality.
	ErrRankExceedsCols = errors.New("projection: target dimension must be < input dimension")

	// ErrNotFitted is returned by Transform before a successful Fit.
	ErrNotFitted = errors.New("projection: transform called before fit")

	// ErrDimension is returned when the input width does not match the
	// fitted dimension.
	ErrDimension = errors.New("projection: input dimension mismatch")

	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("projection: nil input matrix")
)
