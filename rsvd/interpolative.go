package rsvd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// pivotTol is the relative residual-norm floor below which remaining rows
// are considered numerically dependent on the pivots already chosen.
const pivotTol = 1e-12

// Interpolative computes a rank-k row interpolative decomposition of a
// (m×n): an index set J of exactly k unique rows drawn from [0, m) and a
// coefficient matrix P (m×k) such that
//
//	a ≈ P · a[J, :]
//
// with P[J[t], :] forming an identity-like block once reordered (each
// selected row reproduces itself).
//
// Algorithm: greedy column-pivoted Gram–Schmidt over the rows.
//  1. Keep a residual copy of every row.
//  2. k times: pick the row with the largest residual norm (exact ties
//     break to the lowest index — deterministic for a fixed input),
//     normalize it into the orthogonal basis, and deflate every other
//     residual against it.
//  3. Recover P as the least-squares solution of P·a[J,:] ≈ a.
//
// The approximation error ‖a − P·a[J,:]‖ shrinks as k approaches rank(a)
// and vanishes (to roundoff) at k = rank(a). Tie-breaks guarantee only
// the error bound, not a canonical index order.
//
// Errors: ErrNilMatrix, ErrBadRank, ErrRankTooLarge when k > min(m, n),
// ErrRankDeficient when the residual collapses early, ErrDecomposition
// when the coefficient solve fails.
func Interpolative(a *mat.Dense, k int) ([]int, *mat.Dense, error) {
	if a == nil {
		return nil, nil, ErrNilMatrix
	}
	m, n := a.Dims()
	if k <= 0 {
		return nil, nil, ErrBadRank
	}
	if k > m || k > n {
		return nil, nil, fmt.Errorf("rsvd: interpolative k=%d on %d×%d: %w", k, m, n, ErrRankTooLarge)
	}

	// Residual copies of the rows; deflated in place as pivots are chosen.
	resid := make([][]float64, m)
	for i := 0; i < m; i++ {
		resid[i] = make([]float64, n)
		mat.Row(resid[i], i, a)
	}

	norm0 := 0.0
	for i := 0; i < m; i++ {
		if v := floats.Norm(resid[i], 2); v > norm0 {
			norm0 = v
		}
	}
	if norm0 == 0 {
		return nil, nil, fmt.Errorf("rsvd: interpolative on zero matrix: %w", ErrRankDeficient)
	}

	idx := make([]int, 0, k)
	taken := make([]bool, m)

	for t := 0; t < k; t++ {
		// Pivot: strictly-greater comparison keeps the lowest index on ties.
		pivot, best := -1, 0.0
		for i := 0; i < m; i++ {
			if taken[i] {
				continue
			}
			if v := floats.Norm(resid[i], 2); v > best {
				pivot, best = i, v
			}
		}
		if pivot < 0 || best <= pivotTol*norm0 {
			return nil, nil, fmt.Errorf("rsvd: residual collapsed after %d of %d pivots: %w", t, k, ErrRankDeficient)
		}

		q := resid[pivot]
		scale := 1 / best
		for j := range q {
			q[j] *= scale
		}
		taken[pivot] = true
		idx = append(idx, pivot)

		// Deflate all remaining residuals against the new basis vector.
		for i := 0; i < m; i++ {
			if taken[i] {
				continue
			}
			d := floats.Dot(resid[i], q)
			floats.AddScaled(resid[i], -d, q)
		}
	}

	// P minimizes ‖P·a[J,:] − a‖_F: transpose into the tall system
	// a[J,:]ᵀ (n×k) · Pᵀ (k×m) = aᵀ (n×m) and let gonum's QR solver work.
	aj := SelectRows(a, idx)
	var pt mat.Dense
	if err := pt.Solve(aj.T(), a.T()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, nil, fmt.Errorf("rsvd: interpolative coefficient solve: %v: %w", err, ErrDecomposition)
		}
		// Near-singular warning: the solution is still usable and the
		// caller asked for exactly this rank.
	}

	p := mat.NewDense(m, k, nil)
	p.Copy(pt.T())

	return idx, p, nil
}

// SelectRows copies the rows of a named by idx, in order, into a fresh
// len(idx)×cols matrix.
func SelectRows(a *mat.Dense, idx []int) *mat.Dense {
	_, n := a.Dims()
	out := mat.NewDense(len(idx), n, nil)
	for t, i := range idx {
		out.SetRow(t, a.RawRowView(i))
	}

	return out
}
