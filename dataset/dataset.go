package dataset

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Missing is the sentinel for an unobserved rating. It is NaN, so it can
// never be confused with a genuine score and never survives Demean.
var Missing = math.NaN()

// IsMissing reports whether v is the missing-rating sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Ratings is a dense item×user rating matrix. Rows are items, columns are
// users. Values are either finite scores or the Missing sentinel; ±Inf is
// rejected at construction.
//
// Ratings is an immutable value: every transform returns fresh storage.
type Ratings struct {
	m *mat.Dense
}

// New builds a Ratings matrix from row-major data. data must hold exactly
// rows*cols values; use Missing for unobserved cells. A nil data slice
// yields an all-missing matrix.
//
// Errors: ErrBadShape, ErrDataLength, ErrInfValue.
func New(rows, cols int, data []float64) (*Ratings, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if data == nil {
		data = make([]float64, rows*cols)
		for i := range data {
			data[i] = Missing
		}
	}
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	for _, v := range data {
		if math.IsInf(v, 0) {
			return nil, ErrInfValue
		}
	}
	// Copy so the caller's slice stays untouched.
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Ratings{m: mat.NewDense(rows, cols, buf)}, nil
}

// Dims returns (items, users).
func (r *Ratings) Dims() (int, int) {
	if r == nil || r.m == nil {
		return 0, 0
	}

	return r.m.Dims()
}

// At returns the rating of item i by user j; may be Missing.
func (r *Ratings) At(i, j int) float64 { return r.m.At(i, j) }

// Demean centers every column on the mean of its observed entries and
// replaces missing entries with zero.
//
// Algorithm:
//  1. For each column j, mean_j = Σ observed / #observed (0 if the column
//     is entirely missing).
//  2. Observed cells become value − mean_j; missing cells become 0.
//
// Returns the centered matrix and the per-column means, so a caller can
// undo the centering after reconstruction. The result contains finite
// values only.
//
// Errors: ErrNilRatings.
func (r *Ratings) Demean() (*mat.Dense, []float64, error) {
	if r == nil || r.m == nil {
		return nil, nil, ErrNilRatings
	}
	rows, cols := r.m.Dims()

	means := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		var n int
		for i := 0; i < rows; i++ {
			if v := r.m.At(i, j); !IsMissing(v) {
				sum += v
				n++
			}
		}
		if n > 0 {
			means[j] = sum / float64(n)
		}
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := r.m.At(i, j); !IsMissing(v) {
				out.Set(i, j, v-means[j])
			}
			// missing cells stay exactly 0
		}
	}

	return out, means, nil
}

// BlockClusters generates a fully observed block-diagonal preference
// matrix: blocks groups of itemsPerBlock items, each loved (hi) by its own
// group of usersPerBlock users and disliked (lo) by everyone else, plus a
// little seeded jitter so no two rows are identical.
//
// The result has blocks*itemsPerBlock rows and blocks*usersPerBlock
// columns and is deterministic for a fixed seed.
func BlockClusters(blocks, itemsPerBlock, usersPerBlock int, hi, lo float64, seed uint64) *Ratings {
	if blocks <= 0 || itemsPerBlock <= 0 || usersPerBlock <= 0 {
		panic("dataset: BlockClusters dimensions must be positive")
	}
	rows := blocks * itemsPerBlock
	cols := blocks * usersPerBlock
	rng := rand.New(rand.NewSource(int64(seed)))

	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			base := lo
			if i/itemsPerBlock == j/usersPerBlock {
				base = hi
			}
			// jitter is small relative to |hi-lo| so cluster structure dominates
			data[i*cols+j] = base + 0.05*rng.NormFloat64()
		}
	}

	r, err := New(rows, cols, data)
	if err != nil {
		panic(err) // unreachable: dimensions validated above, data finite
	}

	return r
}
