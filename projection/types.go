// Package projection: functional options and documented defaults.
package projection

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultSeed feeds the plane generator when WithSeed is not given.
	DefaultSeed uint64 = 1
)

// Options configures a Gaussian projector. Fields are unexported; public
// APIs consume ...Option, so a zero call site always gets the documented
// defaults.
type Options struct {
	seed uint64
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed}
}

// WithSeed fixes the random source for plane generation, making Fit and
// Transform reproducible bit-for-bit across runs.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}
