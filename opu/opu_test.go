package opu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/opu"
)

// binary 4×3 test input: on/off pixel patterns.
func binaryInput() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		1, 0, 1,
		0, 0, 0,
		1, 1, 1,
		0, 1, 0,
	})
}

// TestNewSimulated_BadOutputDim verifies k <= 0 is rejected.
func TestNewSimulated_BadOutputDim(t *testing.T) {
	_, err := opu.NewSimulated(0)
	assert.ErrorIs(t, err, opu.ErrBadOutputDim)
}

// TestSimulated_ShapeContract checks the (n, d) → (n, k) Device contract,
// including the expanding regime k > d.
func TestSimulated_ShapeContract(t *testing.T) {
	dev, err := opu.NewSimulated(8, opu.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, dev.Fit(3))
	assert.Equal(t, 8, dev.OutputDim())

	y, err := dev.Transform(binaryInput())
	require.NoError(t, err)

	r, c := y.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 8, c)
}

// TestSimulated_IntensityIsNonNegative verifies the |R·x|² nonlinearity:
// a camera records intensities, never negative amplitudes.
func TestSimulated_IntensityIsNonNegative(t *testing.T) {
	dev, err := opu.NewSimulated(5, opu.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, dev.Fit(3))

	y, err := dev.Transform(binaryInput())
	require.NoError(t, err)

	rows, cols := y.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.GreaterOrEqual(t, y.At(i, j), 0.0, "intensity at (%d,%d)", i, j)
		}
	}
}

// TestSimulated_LinearMode verifies WithLinear yields exactly X·R, i.e.
// squaring the linear output reproduces the intensity output.
func TestSimulated_LinearMode(t *testing.T) {
	lin, err := opu.NewSimulated(5, opu.WithSeed(3), opu.WithLinear())
	require.NoError(t, err)
	require.NoError(t, lin.Fit(3))

	intens, err := opu.NewSimulated(5, opu.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, intens.Fit(3))

	x := binaryInput()
	yl, err := lin.Transform(x)
	require.NoError(t, err)
	yi, err := intens.Transform(x)
	require.NoError(t, err)

	rows, cols := yl.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := yl.At(i, j)
			assert.InDelta(t, v*v, yi.At(i, j), 1e-12, "intensity = amplitude² at (%d,%d)", i, j)
		}
	}
}

// TestSimulated_SeedDeterminism verifies a fixed seed reproduces the
// transform exactly and that reconfiguration via Fit resets state.
func TestSimulated_SeedDeterminism(t *testing.T) {
	run := func() *mat.Dense {
		dev, err := opu.NewSimulated(6, opu.WithSeed(21))
		require.NoError(t, err)
		require.NoError(t, dev.Fit(3))
		y, err := dev.Transform(binaryInput())
		require.NoError(t, err)

		return y
	}

	assert.True(t, mat.Equal(run(), run()), "same seed must agree exactly")
}

// TestSimulated_StrictBinary verifies strict mode rejects gray values.
func TestSimulated_StrictBinary(t *testing.T) {
	dev, err := opu.NewSimulated(4, opu.WithStrictBinary())
	require.NoError(t, err)
	require.NoError(t, dev.Fit(2))

	_, err = dev.Transform(mat.NewDense(1, 2, []float64{1, 0.5}))
	assert.ErrorIs(t, err, opu.ErrNonBinaryInput)

	_, err = dev.Transform(mat.NewDense(1, 2, []float64{1, 0}))
	assert.NoError(t, err, "exact 0/1 input passes strict mode")
}

// TestSimulated_Preconditions covers not-fitted, nil and width-mismatch
// fatal paths.
func TestSimulated_Preconditions(t *testing.T) {
	dev, err := opu.NewSimulated(4)
	require.NoError(t, err)

	_, err = dev.Transform(binaryInput())
	assert.ErrorIs(t, err, opu.ErrNotFitted)

	assert.ErrorIs(t, dev.Fit(0), opu.ErrDimension)

	require.NoError(t, dev.Fit(3))
	_, err = dev.Transform(nil)
	assert.ErrorIs(t, err, opu.ErrNilMatrix)

	_, err = dev.Transform(mat.NewDense(2, 5, nil))
	assert.ErrorIs(t, err, opu.ErrDimension)
}
