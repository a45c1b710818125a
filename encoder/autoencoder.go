package encoder

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Autoencoder learns a {0,1} encoding of real-valued feature rows through
// a tanh-relaxed hidden layer trained to reconstruct its input.
//
// Construct with New, train with Fit, then Encode. Fit may be called
// again; it reinitializes the weights from the seed and replaces all
// state.
type Autoencoder struct {
	in   int
	code int
	seed uint64

	epochs int
	lr     float64

	w1 *mat.Dense // in×code
	b1 []float64  // code
	w2 *mat.Dense // code×in
	b2 []float64  // in

	fitted bool
}

// New creates an autoencoder mapping inDim features to codeDim bits.
//
// Errors: ErrBadDims when either dimension is non-positive.
func New(inDim, codeDim int, opts ...Option) (*Autoencoder, error) {
	if inDim <= 0 || codeDim <= 0 {
		return nil, ErrBadDims
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Autoencoder{in: inDim, code: codeDim, seed: o.seed, epochs: o.epochs, lr: o.lr}, nil
}

// InputDim returns the configured feature width.
func (a *Autoencoder) InputDim() int { return a.in }

// CodeDim returns the configured code width.
func (a *Autoencoder) CodeDim() int { return a.code }

// Seed returns the weight-initialization seed.
func (a *Autoencoder) Seed() uint64 { return a.seed }

// Fit trains the autoencoder on x (n×in) by full-batch Adam descent on
// the mean squared reconstruction error. Deterministic for a fixed seed.
//
// Errors: ErrNilMatrix, ErrDimension.
func (a *Autoencoder) Fit(x *mat.Dense) (*Report, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	n, d := x.Dims()
	if d != a.in {
		return nil, fmt.Errorf("encoder: fit width %d, configured %d: %w", d, a.in, ErrDimension)
	}

	a.initWeights()

	params := [][]float64{a.w1.RawMatrix().Data, a.b1, a.w2.RawMatrix().Data, a.b2}
	opt := newAdam(params)

	report := &Report{Epochs: a.epochs, Loss: make([]float64, 0, a.epochs)}
	scale := 2 / float64(n*a.in)

	for epoch := 0; epoch < a.epochs; epoch++ {
		// Forward.
		h := a.hidden(x)      // n×code, tanh activated
		var xhat mat.Dense    // n×in
		xhat.Mul(h, a.w2)
		addRowVector(&xhat, a.b2)

		var diff mat.Dense
		diff.Sub(&xhat, x)
		report.Loss = append(report.Loss, meanSquare(&diff))

		// Backward: dXhat = 2/(n·in) · diff.
		var dxhat mat.Dense
		dxhat.Scale(scale, &diff)

		var gw2 mat.Dense // code×in
		gw2.Mul(h.T(), &dxhat)
		gb2 := columnSums(&dxhat)

		var dh mat.Dense // n×code
		dh.Mul(&dxhat, a.w2.T())
		// dZ = dH ⊙ (1 − h²), tanh derivative through the relaxation.
		dh.Apply(func(i, j int, v float64) float64 {
			hv := h.At(i, j)

			return v * (1 - hv*hv)
		}, &dh)

		var gw1 mat.Dense // in×code
		gw1.Mul(x.T(), &dh)
		gb1 := columnSums(&dh)

		grads := [][]float64{gw1.RawMatrix().Data, gb1, gw2.RawMatrix().Data, gb2}
		opt.step(params, grads, a.lr)
	}

	a.fitted = true

	return report, nil
}

// Encode maps x (n×in) to exact {0,1} codes (n×code): bit j fires when
// the pre-activation x·W₁ + b₁ is strictly positive.
//
// Errors: ErrNilMatrix, ErrNotFitted, ErrDimension.
func (a *Autoencoder) Encode(x *mat.Dense) (*mat.Dense, error) {
	if err := a.checkInput(x); err != nil {
		return nil, err
	}

	var z mat.Dense
	z.Mul(x, a.w1)
	addRowVector(&z, a.b1)
	z.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return 1
		}

		return 0
	}, &z)

	return &z, nil
}

// Decode reconstructs feature rows from {0,1} codes. Intended for
// inspecting what information the bits retain.
//
// Errors: ErrNilMatrix, ErrNotFitted, ErrDimension (code width).
func (a *Autoencoder) Decode(codes *mat.Dense) (*mat.Dense, error) {
	if codes == nil {
		return nil, ErrNilMatrix
	}
	if !a.fitted {
		return nil, ErrNotFitted
	}
	if _, c := codes.Dims(); c != a.code {
		return nil, fmt.Errorf("encoder: decode width %d, configured %d: %w", c, a.code, ErrDimension)
	}

	var xhat mat.Dense
	xhat.Mul(codes, a.w2)
	addRowVector(&xhat, a.b2)

	return &xhat, nil
}

func (a *Autoencoder) checkInput(x *mat.Dense) error {
	if x == nil {
		return ErrNilMatrix
	}
	if !a.fitted {
		return ErrNotFitted
	}
	if _, c := x.Dims(); c != a.in {
		return fmt.Errorf("encoder: input width %d, configured %d: %w", c, a.in, ErrDimension)
	}

	return nil
}

// hidden computes tanh(x·W₁ + b₁).
func (a *Autoencoder) hidden(x *mat.Dense) *mat.Dense {
	var z mat.Dense
	z.Mul(x, a.w1)
	addRowVector(&z, a.b1)
	z.Apply(func(_, _ int, v float64) float64 { return math.Tanh(v) }, &z)

	return &z
}

// initWeights draws all weights N(0, initScale²) from the seed; biases
// start at zero.
func (a *Autoencoder) initWeights() {
	rng := rand.New(rand.NewSource(int64(a.seed)))

	draw := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = rng.NormFloat64() * initScale
		}

		return out
	}

	a.w1 = mat.NewDense(a.in, a.code, draw(a.in*a.code))
	a.b1 = make([]float64, a.code)
	a.w2 = mat.NewDense(a.code, a.in, draw(a.code*a.in))
	a.b2 = make([]float64, a.in)
}

// addRowVector adds v to every row of m in place.
func addRowVector(m *mat.Dense, v []float64) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)+v[j])
		}
	}
}

// columnSums returns the per-column sums of m.
func columnSums(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j] += m.At(i, j)
		}
	}

	return out
}

// meanSquare returns the mean of the squared entries of m.
func meanSquare(m *mat.Dense) float64 {
	rows, cols := m.Dims()
	var s float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			s += v * v
		}
	}

	return s / float64(rows*cols)
}
