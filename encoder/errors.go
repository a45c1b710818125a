// Package encoder: sentinel error set. Tests match via errors.Is.
package encoder

import "errors"

var (
	// ErrBadDims is returned when input or code dimensions are
	// non-positive.
	ErrBadDims = errors.New("encoder: dimensions must be > 0")

	// ErrNotFitted is returned by Encode/Decode before a successful Fit.
	ErrNotFitted = errors.New("encoder: encode called before fit")

	// ErrDimension is returned when the input width does not match the
	// configured input dimension.
	ErrDimension = errors.New("encoder: input dimension mismatch")

	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("encoder: nil input matrix")
)
