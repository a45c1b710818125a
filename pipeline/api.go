package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Stage is one typed fit/transform step. Implementations must be
// deterministic given their configuration, must not mutate inputs, and
// must reject shape mismatches with descriptive errors.
type Stage interface {
	// Name identifies the stage in wrapped errors.
	Name() string

	// Fit prepares the stage for inputs shaped like x. Called once per
	// Pipeline.Fit, in order, with the upstream stages' output.
	Fit(x *mat.Dense) error

	// Transform maps x through the fitted stage.
	Transform(x *mat.Dense) (*mat.Dense, error)
}

// Pipeline is an explicit ordered list of stages. Data flows strictly
// left to right; no stage sees anything but its predecessor's output.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline from stages, in order.
//
// Errors: ErrNoStages, ErrNilStage.
func New(stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for _, s := range stages {
		if s == nil {
			return nil, ErrNilStage
		}
	}

	return &Pipeline{stages: stages}, nil
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}

	return names
}

// Fit fits every stage in order, transforming through each fitted stage
// so downstream stages train on what they will see at transform time.
// Any stage error is wrapped with the stage's name.
func (p *Pipeline) Fit(x *mat.Dense) error {
	_, err := p.FitTransform(x)

	return err
}

// FitTransform is Fit that also returns the final transformed output.
func (p *Pipeline) FitTransform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	cur := x
	for _, s := range p.stages {
		if err := s.Fit(cur); err != nil {
			return nil, fmt.Errorf("pipeline: stage %q fit: %w", s.Name(), err)
		}
		out, err := s.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline: stage %q transform: %w", s.Name(), err)
		}
		cur = out
	}

	return cur, nil
}

// Transform runs the already-fitted stages in order.
func (p *Pipeline) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	cur := x
	for _, s := range p.stages {
		out, err := s.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("pipeline: stage %q transform: %w", s.Name(), err)
		}
		cur = out
	}

	return cur, nil
}
