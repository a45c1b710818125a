// Package encoder: functional options and documented defaults.
package encoder

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultSeed feeds weight initialization.
	DefaultSeed uint64 = 1

	// DefaultEpochs is the full-batch pass count when WithEpochs is not
	// given.
	DefaultEpochs = 200

	// DefaultLearningRate is Adam's step size.
	DefaultLearningRate = 0.01

	// Adam moment decay rates and the denominator fuzz. Fixed, not
	// options: every corpus training loop hard-codes the canonical trio.
	adamBeta1   = 0.9
	adamBeta2   = 0.999
	adamEpsilon = 1e-8

	// initScale is the stddev of the Gaussian weight initialization.
	initScale = 0.1
)

// Options configures an Autoencoder.
type Options struct {
	seed   uint64
	epochs int
	lr     float64
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed, epochs: DefaultEpochs, lr: DefaultLearningRate}
}

// WithSeed fixes weight initialization, making Fit reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithEpochs sets the number of full-batch training passes.
// Panics on non-positive n (programmer error, not a runtime condition).
func WithEpochs(n int) Option {
	if n <= 0 {
		panic("encoder: WithEpochs requires n > 0")
	}

	return func(o *Options) { o.epochs = n }
}

// WithLearningRate sets Adam's step size.
// Panics on non-positive lr.
func WithLearningRate(lr float64) Option {
	if lr <= 0 {
		panic("encoder: WithLearningRate requires lr > 0")
	}

	return func(o *Options) { o.lr = lr }
}

// Report summarizes a training run.
type Report struct {
	// Epochs is the number of passes performed.
	Epochs int

	// Loss holds the mean squared reconstruction error after each epoch.
	Loss []float64
}
