package opu

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultSeed feeds the transmission-matrix generator.
	DefaultSeed uint64 = 1
)

// Options configures a Simulated device.
type Options struct {
	seed   uint64
	linear bool
	strict bool
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the documented defaults: seeded intensity device,
// lenient input checking.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed}
}

// WithSeed fixes the transmission-matrix random source.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLinear skips the intensity nonlinearity, turning the device into a
// plain seeded linear map y = R·x. Useful for pipelines that need the
// signed projection the optics cannot physically deliver.
func WithLinear() Option {
	return func(o *Options) { o.linear = true }
}

// WithStrictBinary makes Transform reject inputs holding values other
// than exactly 0 or 1, mirroring the physical device's input format.
func WithStrictBinary() Option {
	return func(o *Options) { o.strict = true }
}

// Simulated is a software OPU: a seeded Gaussian transmission matrix R
// (d×k) and, unless WithLinear is set, the intensity measurement
// y_j = (R·x)_j² that a camera behind the scattering medium records.
//
// Deterministic for a fixed seed. Implements Device.
type Simulated struct {
	k    int
	seed uint64

	linear bool
	strict bool

	d      int
	trans  *mat.Dense // d×k transmission matrix
	fitted bool
}

var _ Device = (*Simulated)(nil)

// NewSimulated creates a simulated OPU with k output features.
//
// Errors: ErrBadOutputDim when k <= 0.
func NewSimulated(k int, opts ...Option) (*Simulated, error) {
	if k <= 0 {
		return nil, ErrBadOutputDim
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simulated{k: k, seed: o.seed, linear: o.linear, strict: o.strict}, nil
}

// OutputDim returns the configured output dimension k.
func (s *Simulated) OutputDim() int { return s.k }

// Seed returns the transmission-matrix seed.
func (s *Simulated) Seed() uint64 { return s.seed }

// Linear reports whether the intensity nonlinearity is disabled.
func (s *Simulated) Linear() bool { return s.linear }

// Fit draws the d×k transmission matrix for inputs of width nFeatures.
// Unlike projection.Gaussian, an OPU happily expands dimensionality
// (k > d is the common regime in optical kernel methods), so the only
// precondition is nFeatures > 0.
func (s *Simulated) Fit(nFeatures int) error {
	if nFeatures <= 0 {
		return fmt.Errorf("opu: fit with nFeatures=%d: %w", nFeatures, ErrDimension)
	}

	rng := rand.New(rand.NewSource(int64(s.seed)))
	data := make([]float64, nFeatures*s.k)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	s.d = nFeatures
	s.trans = mat.NewDense(nFeatures, s.k, data)
	s.fitted = true

	return nil
}

// Transform projects x (n×d) through the transmission matrix and, unless
// the device is linear, squares each output — the intensity the optics
// measure. The input is never mutated.
//
// Errors: ErrNilMatrix, ErrNotFitted, ErrDimension, ErrNonBinaryInput
// (strict mode only).
func (s *Simulated) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	if !s.fitted {
		return nil, ErrNotFitted
	}
	rows, cols := x.Dims()
	if cols != s.d {
		return nil, fmt.Errorf("opu: transform width %d, fitted %d: %w", cols, s.d, ErrDimension)
	}
	if s.strict {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if v := x.At(i, j); v != 0 && v != 1 {
					return nil, fmt.Errorf("opu: value %v at (%d,%d): %w", v, i, j, ErrNonBinaryInput)
				}
			}
		}
	}

	var y mat.Dense
	y.Mul(x, s.trans)

	if !s.linear {
		y.Apply(func(_, _ int, v float64) float64 { return v * v }, &y)
	}

	return &y, nil
}
