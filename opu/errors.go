// Package opu: sentinel error set. Tests match via errors.Is.
package opu

import "errors"

var (
	// ErrBadOutputDim is returned when the configured output dimension is
	// non-positive.
	ErrBadOutputDim = errors.New("opu: output dimension must be > 0")

	// ErrNotFitted is returned by Transform before a successful Fit.
	ErrNotFitted = errors.New("opu: transform called before fit")

	// ErrDimension is returned when the input width does not match the
	// fitted number of features.
	ErrDimension = errors.New("opu: input dimension mismatch")

	// ErrNonBinaryInput is returned in strict mode when the input holds a
	// value other than 0 or 1. The physical device only understands
	// on/off pixels.
	ErrNonBinaryInput = errors.New("opu: input must be binary (0/1)")

	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("opu: nil input matrix")
)
