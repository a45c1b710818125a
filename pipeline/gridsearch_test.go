package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/pipeline"
	"github.com/rishirelan/lightonml/projection"
)

// passBuilder returns a trivial one-stage pipeline regardless of params.
func passBuilder(t *testing.T) pipeline.Builder {
	t.Helper()

	return func(_ pipeline.Params) (*pipeline.Pipeline, error) {
		g, err := projection.New(1, projection.WithSeed(1))
		require.NoError(t, err)

		return pipeline.New(pipeline.Project(g))
	}
}

// TestGridSearch_EnumerationOrder verifies sorted-key odometer order:
// the later-sorted name's values advance fastest.
func TestGridSearch_EnumerationOrder(t *testing.T) {
	grid := pipeline.Grid{
		"seed": {1, 2, 3},
		"k":    {1, 2},
	}

	var seen []pipeline.Params
	score := func(_ *pipeline.Pipeline, _ *mat.Dense) (float64, error) {
		return 0, nil
	}
	build := func(p pipeline.Params) (*pipeline.Pipeline, error) {
		seen = append(seen, p)

		return passBuilder(t)(p)
	}

	res, err := pipeline.GridSearch(build, grid, score, mat.NewDense(2, 4, nil))
	require.NoError(t, err)
	require.Len(t, res.Trials, 6)

	want := []pipeline.Params{
		{"k": 1, "seed": 1}, {"k": 1, "seed": 2}, {"k": 1, "seed": 3},
		{"k": 2, "seed": 1}, {"k": 2, "seed": 2}, {"k": 2, "seed": 3},
	}
	assert.Equal(t, want, seen)
}

// TestGridSearch_PicksHighestScore verifies best-by-score selection with
// the full trial log preserved.
func TestGridSearch_PicksHighestScore(t *testing.T) {
	grid := pipeline.Grid{"k": {1, 2}, "seed": {1, 2, 3}}

	var trial int
	scores := []float64{0.1, 0.9, 0.3, 0.2, 0.9, 0.5}
	sc := func(_ *pipeline.Pipeline, _ *mat.Dense) (float64, error) {
		s := scores[trial]
		trial++

		return s, nil
	}

	res, err := pipeline.GridSearch(passBuilder(t), grid, sc, mat.NewDense(2, 4, nil))
	require.NoError(t, err)

	assert.InDelta(t, 0.9, res.BestScore, 1e-12)
	// Ties (trials 1 and 4 both score 0.9) keep the earlier combination.
	assert.Equal(t, pipeline.Params{"k": 1, "seed": 2}, res.Best)
	assert.Len(t, res.Trials, 6)
}

// TestGridSearch_Validation covers the fatal precondition paths.
func TestGridSearch_Validation(t *testing.T) {
	x := mat.NewDense(2, 4, nil)
	sc := func(_ *pipeline.Pipeline, _ *mat.Dense) (float64, error) { return 0, nil }

	_, err := pipeline.GridSearch(nil, pipeline.Grid{"k": {1}}, sc, x)
	assert.ErrorIs(t, err, pipeline.ErrNoBuilder)

	_, err = pipeline.GridSearch(passBuilder(t), pipeline.Grid{}, sc, x)
	assert.ErrorIs(t, err, pipeline.ErrEmptyGrid)

	_, err = pipeline.GridSearch(passBuilder(t), pipeline.Grid{"k": {}}, sc, x)
	assert.ErrorIs(t, err, pipeline.ErrEmptyGrid, "empty value list")

	_, err = pipeline.GridSearch(passBuilder(t), pipeline.Grid{"k": {1}}, sc, nil)
	assert.ErrorIs(t, err, pipeline.ErrNilMatrix)
}
