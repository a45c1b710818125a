// Package dataset: sentinel error set.
// All user-triggered failures return these sentinels; tests match them via
// errors.Is. Panics are reserved for programmer errors in constructors.
package dataset

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("dataset: dimensions must be > 0")

	// ErrDataLength is returned when the backing slice length does not
	// equal rows*cols.
	ErrDataLength = errors.New("dataset: data length does not match dimensions")

	// ErrInfValue is returned when ±Inf is encountered at ingestion.
	// NaN is legal — it is the missing-rating sentinel.
	ErrInfValue = errors.New("dataset: Inf encountered in ratings")

	// ErrNilRatings is returned when a nil *Ratings receiver is used.
	ErrNilRatings = errors.New("dataset: nil ratings")
)
