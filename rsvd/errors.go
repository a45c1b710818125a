// Package rsvd: sentinel error set (unified, consistent).
// All algorithms return these sentinels and tests check them via
// errors.Is. Numerical failures inside gonum surface as ErrDecomposition,
// never silently.
package rsvd

import "errors"

var (
	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("rsvd: nil input matrix")

	// ErrBadRank is returned when the requested rank k is non-positive.
	ErrBadRank = errors.New("rsvd: rank must be > 0")

	// ErrRankTooLarge is returned when k exceeds what the input shapes
	// can support (k > min(rows, cols) or k > sketch width).
	ErrRankTooLarge = errors.New("rsvd: rank exceeds matrix dimensions")

	// ErrDimension is returned when the sketch Y does not share X's row
	// count.
	ErrDimension = errors.New("rsvd: sketch dimension mismatch")

	// ErrRankDeficient is returned by the interpolative decomposer when
	// the residual collapses before k pivots were found, i.e. the input
	// has numerical rank below k.
	ErrRankDeficient = errors.New("rsvd: matrix rank below requested k")

	// ErrDecomposition is returned when an inner factorization (QR,
	// least-squares solve, or the small exact SVD) fails to converge.
	// The underlying library error is wrapped and inspectable.
	ErrDecomposition = errors.New("rsvd: decomposition failure")
)
