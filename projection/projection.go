package projection

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Gaussian projects rows of a matrix down to k dimensions through a fixed
// random plane matrix R (d×k) with entries drawn N(0, 1/k).
//
// The zero value is not usable; construct with New, then Fit for a
// concrete input width before Transform. Fit may be called again to
// re-layout the planes for a different width; it replaces all state.
type Gaussian struct {
	k    int
	seed uint64

	d      int
	planes *mat.Dense // d×k, laid out by Fit
	fitted bool
}

// New creates a Gaussian projector targeting k output dimensions.
//
// Errors: ErrBadRank when k <= 0.
func New(k int, opts ...Option) (*Gaussian, error) {
	if k <= 0 {
		return nil, ErrBadRank
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Gaussian{k: k, seed: o.seed}, nil
}

// OutputDim returns the target dimension k.
func (g *Gaussian) OutputDim() int { return g.k }

// Seed returns the seed the plane matrix was generated from.
func (g *Gaussian) Seed() uint64 { return g.seed }

// InputDim returns the fitted input width d, or 0 before Fit.
func (g *Gaussian) InputDim() int { return g.d }

// Fit lays out the d×k plane matrix for inputs of width d. Deterministic
// for a fixed seed: the same (seed, d, k) always yields the same planes.
//
// Precondition: k < d (a projection reduces dimensionality).
// Errors: ErrDimension when d <= 0, ErrRankExceedsCols when k >= d.
func (g *Gaussian) Fit(d int) error {
	if d <= 0 {
		return fmt.Errorf("projection: fit with d=%d: %w", d, ErrDimension)
	}
	if g.k >= d {
		return fmt.Errorf("projection: fit with k=%d, d=%d: %w", g.k, d, ErrRankExceedsCols)
	}

	rng := rand.New(rand.NewSource(int64(g.seed)))
	scale := 1 / math.Sqrt(float64(g.k))
	data := make([]float64, d*g.k)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}

	g.d = d
	g.planes = mat.NewDense(d, g.k, data)
	g.fitted = true

	return nil
}

// Transform maps X (n×d) to X·R (n×k). The input is never mutated.
//
// Errors: ErrNilMatrix, ErrNotFitted, ErrDimension when cols(X) != d.
func (g *Gaussian) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	if !g.fitted {
		return nil, ErrNotFitted
	}
	if _, c := x.Dims(); c != g.d {
		return nil, fmt.Errorf("projection: transform width %d, fitted %d: %w", c, g.d, ErrDimension)
	}

	var y mat.Dense
	y.Mul(x, g.planes)

	return &y, nil
}

// Binarize thresholds every entry of x: values strictly above threshold
// become 1, the rest 0. This is the encoding an OPU expects on its input;
// pair it with encoder.Autoencoder when a learned encoding is wanted.
func Binarize(x *mat.Dense, threshold float64) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x.At(i, j) > threshold {
				out.Set(i, j, 1)
			}
		}
	}

	return out
}
