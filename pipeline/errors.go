// Package pipeline: sentinel error set. Stage failures are wrapped with
// the stage name; match the cause via errors.Is.
package pipeline

import "errors"

var (
	// ErrNoStages is returned when a pipeline is built without stages.
	ErrNoStages = errors.New("pipeline: at least one stage required")

	// ErrNilStage is returned when a nil Stage is passed.
	ErrNilStage = errors.New("pipeline: nil stage")

	// ErrNilMatrix is returned when a nil input matrix is passed.
	ErrNilMatrix = errors.New("pipeline: nil input matrix")

	// ErrEmptyGrid is returned when a grid search has no parameters or an
	// empty value list.
	ErrEmptyGrid = errors.New("pipeline: empty parameter grid")

	// ErrNoBuilder is returned when GridSearch is called without a
	// pipeline constructor or scorer.
	ErrNoBuilder = errors.New("pipeline: builder and scorer required")
)
