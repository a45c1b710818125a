// Package rsvd assembles an approximate rank-k singular value
// decomposition from a random low-dimensional sketch, at a cost
// asymptotically below exact SVD for large matrices.
//
// 🚀 How it works
//
//	Given X (m×n) and a sketch Y = X·R (m×k) from any random projector —
//	software Gaussian planes or an optical processing unit:
//
//	 1. Re-project:    Z = X·(Xᵀ·Y)          — concentrates energy along
//	                                            the dominant directions
//	 2. Row ID:        Z ≈ P·Z[J,:]          — Interpolative picks k
//	                                            representative rows J
//	 3. Orthogonalize: X[J,:]ᵀ = Q·T (QR)    — gonum Householder QR
//	 4. Small SVD:     P·Tᵀ = U·diag(S)·Wᵀ   — exact, k columns wide
//	 5. Compose:       V = Wᵀ·Qᵀ, so U·diag(S)·V ≈ X
//
// The reconstruction error shrinks as k grows and vanishes (up to
// roundoff) once k reaches rank(X).
//
// ⚙️ Usage:
//
//	g, _ := projection.New(k, projection.WithSeed(7))
//	_ = g.Fit(n)
//	y, _ := g.Transform(x)
//	f, err := rsvd.SVD(x, y, k)
//	if err != nil { ... }                  // ErrDimension | ErrDecomposition
//	approx := f.Reconstruct()              // U·diag(S)·V
//
// Every operation is a stateless pure function; all randomness lives in
// the caller-supplied sketch.
//
// Complexity: O(m·n·k) for the dense multiplies, O(m·k²) for the ID and
// O(k³)-ish for the inner exact SVD — versus O(m·n·min(m,n)) for a full
// SVD of X.
package rsvd
