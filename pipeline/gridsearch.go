package pipeline

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Grid maps a parameter name to its candidate values. Integer-valued
// hyperparameters (ranks, epochs) travel as float64s and are truncated by
// the builder.
type Grid map[string][]float64

// Params is one concrete assignment drawn from a Grid.
type Params map[string]float64

// Builder constructs a fresh, unfitted pipeline for one parameter
// assignment.
type Builder func(p Params) (*Pipeline, error)

// Scorer evaluates a pipeline on x; higher is better. The pipeline
// arrives unfitted, so a scorer is free to fit on one slice of x and
// judge on another.
type Scorer func(p *Pipeline, x *mat.Dense) (float64, error)

// Trial records one evaluated combination.
type Trial struct {
	Params Params
	Score  float64
}

// SearchResult is the outcome of an exhaustive grid search.
type SearchResult struct {
	// Best holds the winning assignment and BestScore its score.
	Best      Params
	BestScore float64

	// Trials lists every combination in enumeration order.
	Trials []Trial
}

// GridSearch evaluates every combination in grid and returns the best.
//
// Enumeration is deterministic: parameter names are sorted, and the
// rightmost name's values advance fastest (odometer order). Exact score
// ties keep the earlier combination. Builder or scorer errors abort the
// search immediately, wrapped with the offending assignment.
//
// Errors: ErrNoBuilder, ErrEmptyGrid, ErrNilMatrix.
func GridSearch(build Builder, grid Grid, score Scorer, x *mat.Dense) (*SearchResult, error) {
	if build == nil || score == nil {
		return nil, ErrNoBuilder
	}
	if x == nil {
		return nil, ErrNilMatrix
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	names := make([]string, 0, len(grid))
	for name, values := range grid {
		if len(values) == 0 {
			return nil, fmt.Errorf("pipeline: parameter %q has no values: %w", name, ErrEmptyGrid)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	result := &SearchResult{BestScore: 0}
	cursor := make([]int, len(names))

	for {
		assign := make(Params, len(names))
		for i, name := range names {
			assign[name] = grid[name][cursor[i]]
		}

		p, err := build(assign)
		if err != nil {
			return nil, fmt.Errorf("pipeline: build %v: %w", assign, err)
		}
		s, err := score(p, x)
		if err != nil {
			return nil, fmt.Errorf("pipeline: score %v: %w", assign, err)
		}

		result.Trials = append(result.Trials, Trial{Params: assign, Score: s})
		if result.Best == nil || s > result.BestScore {
			result.Best = assign
			result.BestScore = s
		}

		// Odometer: advance the rightmost name's value index.
		i := len(names) - 1
		for ; i >= 0; i-- {
			cursor[i]++
			if cursor[i] < len(grid[names[i]]) {
				break
			}
			cursor[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return result, nil
}
