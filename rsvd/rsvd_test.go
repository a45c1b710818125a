package rsvd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/projection"
	"github.com/rishirelan/lightonml/rsvd"
)

// rank2Matrix builds a well-conditioned 6×5 matrix of exact rank 2: every
// row is a distinct combination of two fixed spread-out basis rows.
func rank2Matrix() *mat.Dense {
	u1 := []float64{1, 2, 3, 4, 5}
	u2 := []float64{5, 4, 3, 2, 1}
	coef := [][2]float64{{1, 0}, {0, 1}, {1, 1}, {2, -1}, {-1, 2}, {1, -2}}

	x := mat.NewDense(6, 5, nil)
	for i, c := range coef {
		for j := 0; j < 5; j++ {
			x.Set(i, j, c[0]*u1[j]+c[1]*u2[j])
		}
	}

	return x
}

// rank3Matrix extends rank2Matrix with a third independent direction.
func rank3Matrix() *mat.Dense {
	x := rank2Matrix()
	u3 := []float64{1, -1, 1, -1, 1}
	coef := []float64{0.5, -0.25, 1, 0, -0.75, 0.25}
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			x.Set(i, j, x.At(i, j)+coef[i]*u3[j])
		}
	}

	return x
}

// sketch projects x down to s columns with a fixed-seed Gaussian.
func sketch(t *testing.T, x *mat.Dense, s int) *mat.Dense {
	t.Helper()
	_, d := x.Dims()
	g, err := projection.New(s, projection.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, g.Fit(d))
	y, err := g.Transform(x)
	require.NoError(t, err)

	return y
}

// frob returns ‖a−b‖_F.
func frob(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)

	return mat.Norm(&d, 2)
}

// TestInterpolative_IndexSetContract verifies J holds exactly k unique
// in-range indices and that each selected row reproduces itself through P.
func TestInterpolative_IndexSetContract(t *testing.T) {
	a := rank3Matrix()
	idx, p, err := rsvd.Interpolative(a, 3)
	require.NoError(t, err)

	require.Len(t, idx, 3)
	seen := map[int]bool{}
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 6)
		assert.False(t, seen[i], "indices must be unique")
		seen[i] = true
	}

	var approx mat.Dense
	approx.Mul(p, rsvd.SelectRows(a, idx))
	for _, i := range idx {
		for j := 0; j < 5; j++ {
			assert.InDelta(t, a.At(i, j), approx.At(i, j), 1e-8,
				"selected row %d must reproduce itself", i)
		}
	}
}

// TestInterpolative_ExactAtRank verifies a ≈ P·a[J,:] to roundoff when
// k equals the true rank.
func TestInterpolative_ExactAtRank(t *testing.T) {
	a := rank2Matrix()
	idx, p, err := rsvd.Interpolative(a, 2)
	require.NoError(t, err)

	var approx mat.Dense
	approx.Mul(p, rsvd.SelectRows(a, idx))
	assert.Less(t, frob(a, &approx), 1e-8, "rank-2 matrix, k=2 must be exact")
}

// TestInterpolative_ErrorShrinksWithRank verifies the approximation error
// decreases as k grows toward the rank.
func TestInterpolative_ErrorShrinksWithRank(t *testing.T) {
	a := rank3Matrix()

	errAt := func(k int) float64 {
		idx, p, err := rsvd.Interpolative(a, k)
		require.NoError(t, err)
		var approx mat.Dense
		approx.Mul(p, rsvd.SelectRows(a, idx))

		return frob(a, &approx)
	}

	e1, e2, e3 := errAt(1), errAt(2), errAt(3)
	assert.Greater(t, e1, e2, "k=2 must beat k=1")
	assert.Greater(t, e2, e3, "k=3 must beat k=2")
	assert.Less(t, e3, 1e-8, "k=rank must be exact")
}

// TestInterpolative_RankDeficient verifies the distinct failure kind when
// the matrix cannot support k pivots.
func TestInterpolative_RankDeficient(t *testing.T) {
	zero := mat.NewDense(3, 3, nil)
	_, _, err := rsvd.Interpolative(zero, 1)
	assert.ErrorIs(t, err, rsvd.ErrRankDeficient, "zero matrix has no pivots")

	// Rank-1 matrix, k=2: the residual collapses after one pivot.
	one := mat.NewDense(3, 3, []float64{1, 2, 3, 2, 4, 6, 3, 6, 9})
	_, _, err = rsvd.Interpolative(one, 2)
	assert.ErrorIs(t, err, rsvd.ErrRankDeficient)
}

// TestInterpolative_Validation covers the fatal precondition paths.
func TestInterpolative_Validation(t *testing.T) {
	_, _, err := rsvd.Interpolative(nil, 1)
	assert.ErrorIs(t, err, rsvd.ErrNilMatrix)

	a := rank2Matrix()
	_, _, err = rsvd.Interpolative(a, 0)
	assert.ErrorIs(t, err, rsvd.ErrBadRank)

	_, _, err = rsvd.Interpolative(a, 7)
	assert.ErrorIs(t, err, rsvd.ErrRankTooLarge)
}

// TestSVD_FactorContract verifies output shapes and the non-negative,
// descending singular-value convention.
func TestSVD_FactorContract(t *testing.T) {
	x := rank3Matrix()
	f, err := rsvd.SVD(x, sketch(t, x, 3), 3)
	require.NoError(t, err)

	ur, uc := f.U.Dims()
	assert.Equal(t, 6, ur)
	assert.Equal(t, 3, uc)
	vr, vc := f.V.Dims()
	assert.Equal(t, 3, vr)
	assert.Equal(t, 5, vc)
	require.Len(t, f.S, 3)
	assert.Equal(t, 3, f.Rank())

	for i, s := range f.S {
		assert.GreaterOrEqual(t, s, 0.0, "singular values are non-negative")
		if i > 0 {
			assert.LessOrEqual(t, s, f.S[i-1], "singular values descend")
		}
	}
}

// TestSVD_ExactAtRank verifies near-zero reconstruction error once k
// reaches rank(x).
func TestSVD_ExactAtRank(t *testing.T) {
	x := rank2Matrix()
	f, err := rsvd.SVD(x, sketch(t, x, 2), 2)
	require.NoError(t, err)

	assert.Less(t, frob(x, f.Reconstruct()), 1e-6,
		"k = rank(x) must reconstruct x to roundoff")
}

// TestSVD_ErrorDecreasesWithRank verifies reconstruction error shrinks
// as k grows, on a rank-3 input.
func TestSVD_ErrorDecreasesWithRank(t *testing.T) {
	x := rank3Matrix()
	y := sketch(t, x, 3)

	errAt := func(k int) float64 {
		f, err := rsvd.SVD(x, y, k)
		require.NoError(t, err)

		return frob(x, f.Reconstruct())
	}

	e1, e3 := errAt(1), errAt(3)
	assert.Greater(t, e1, e3, "higher rank must not reconstruct worse")
	assert.Less(t, e3, 1e-6, "k = rank must be exact")
}

// TestSVD_Validation covers every fatal precondition, each identifying
// the offending stage through its sentinel.
func TestSVD_Validation(t *testing.T) {
	x := rank2Matrix()
	y := sketch(t, x, 2)

	_, err := rsvd.SVD(nil, y, 2)
	assert.ErrorIs(t, err, rsvd.ErrNilMatrix)

	_, err = rsvd.SVD(x, nil, 2)
	assert.ErrorIs(t, err, rsvd.ErrNilMatrix)

	_, err = rsvd.SVD(x, y, 0)
	assert.ErrorIs(t, err, rsvd.ErrBadRank)

	_, err = rsvd.SVD(x, y, 6)
	assert.ErrorIs(t, err, rsvd.ErrRankTooLarge, "k beyond min(m,n)")

	_, err = rsvd.SVD(x, y, 3)
	assert.ErrorIs(t, err, rsvd.ErrRankTooLarge, "k beyond sketch width")

	short := mat.NewDense(2, 2, nil)
	_, err = rsvd.SVD(x, short, 2)
	assert.ErrorIs(t, err, rsvd.ErrDimension, "sketch row count must match")
}

// TestFactorization_ItemFactors verifies U·diag(S) row scaling.
func TestFactorization_ItemFactors(t *testing.T) {
	x := rank2Matrix()
	f, err := rsvd.SVD(x, sketch(t, x, 2), 2)
	require.NoError(t, err)

	fac := f.ItemFactors()
	r, c := fac.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, f.U.At(i, j)*f.S[j], fac.At(i, j), 1e-12)
		}
	}
}
