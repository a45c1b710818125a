package rsvd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Factorization holds an approximate rank-k SVD: U (m×k) left singular
// vectors, S the k singular values (non-negative, descending), and V
// (k×n) the right factor, so that U·diag(S)·V ≈ X.
type Factorization struct {
	U *mat.Dense
	S []float64
	V *mat.Dense
}

// Rank returns k.
func (f *Factorization) Rank() int { return len(f.S) }

// Reconstruct multiplies the factors back into an m×n approximation of
// the original matrix. Intended for diagnostics and tests.
func (f *Factorization) Reconstruct() *mat.Dense {
	k := len(f.S)
	var us mat.Dense
	us.Mul(f.U, mat.NewDiagDense(k, f.S))

	var out mat.Dense
	out.Mul(&us, f.V)

	return &out
}

// ItemFactors returns U·diag(S) (m×k): each row is an item embedded in
// the latent space, scaled by singular-value importance. This is the
// matrix the similarity ranker consumes.
func (f *Factorization) ItemFactors() *mat.Dense {
	var us mat.Dense
	us.Mul(f.U, mat.NewDiagDense(len(f.S), f.S))

	return &us
}

// SVD assembles an approximate rank-k singular value decomposition of x
// (m×n) from its random sketch y (m×s, s ≥ k), typically y = x·R for a
// seeded Gaussian R or an OPU transform.
//
// Stages:
//  1. Validate shapes: rows(y) == m, k ≤ min(m, n), k ≤ s.
//  2. Re-project: z = x·(xᵀ·y), concentrating energy along dominant
//     directions.
//  3. Row ID of z: indices J and coefficients P with z ≈ P·z[J,:].
//  4. QR of x[J,:]ᵀ (Householder, gonum): x[J,:] = Tᵀ·Qᵀ with T the thin
//     upper-triangular factor.
//  5. Exact thin SVD of the small product P·Tᵀ (m×k), then V = Wᵀ·Qᵀ.
//
// The output satisfies ‖U·diag(S)·V − x‖ → 0 as k → rank(x); for
// k ≥ rank(x) the reconstruction is exact up to roundoff.
//
// Errors: ErrNilMatrix, ErrBadRank, ErrRankTooLarge, ErrDimension,
// ErrRankDeficient, ErrDecomposition (inner convergence failures,
// wrapped, never swallowed).
func SVD(x, y *mat.Dense, k int) (*Factorization, error) {
	if x == nil || y == nil {
		return nil, ErrNilMatrix
	}
	m, n := x.Dims()
	ym, s := y.Dims()
	if k <= 0 {
		return nil, ErrBadRank
	}
	if ym != m {
		return nil, fmt.Errorf("rsvd: sketch has %d rows, matrix has %d: %w", ym, m, ErrDimension)
	}
	if k > m || k > n {
		return nil, fmt.Errorf("rsvd: k=%d on %d×%d: %w", k, m, n, ErrRankTooLarge)
	}
	if k > s {
		return nil, fmt.Errorf("rsvd: k=%d exceeds sketch width %d: %w", k, s, ErrRankTooLarge)
	}

	// Stage 2: one power-iteration step through xᵀ·x.
	var xty, z mat.Dense
	xty.Mul(x.T(), y) // n×s
	z.Mul(x, &xty)    // m×s

	// Stage 3: representative rows of the energized sketch.
	idx, p, err := Interpolative(&z, k)
	if err != nil {
		return nil, err
	}

	// Stage 4: orthogonalize the selected rows of x.
	xj := SelectRows(x, idx) // k×n
	var qr mat.QR
	qr.Factorize(xj.T()) // n×k, n ≥ k holds by validation

	var qFull, rFull mat.Dense
	qr.QTo(&qFull) // n×n
	qr.RTo(&rFull) // n×k
	q := qFull.Slice(0, n, 0, k) // thin Q: n×k
	tri := rFull.Slice(0, k, 0, k)

	// Stage 5: exact SVD of the small product.
	var small mat.Dense
	small.Mul(p, tri.T()) // m×k

	var svd mat.SVD
	if ok := svd.Factorize(&small, mat.SVDThin); !ok {
		return nil, fmt.Errorf("rsvd: inner SVD did not converge: %w", ErrDecomposition)
	}

	var u, w mat.Dense
	svd.UTo(&u) // m×k
	svd.VTo(&w) // k×k
	sv := svd.Values(nil)

	var v mat.Dense
	v.Mul(w.T(), q.T()) // k×n

	return &Factorization{U: &u, S: sv, V: &v}, nil
}
