package recommend

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/dataset"
	"github.com/rishirelan/lightonml/opu"
	"github.com/rishirelan/lightonml/projection"
	"github.com/rishirelan/lightonml/rsvd"
	"github.com/rishirelan/lightonml/similarity"
)

var (
	// ErrBadRank is returned when the latent rank k is non-positive.
	ErrBadRank = errors.New("recommend: rank must be > 0")

	// ErrNotFitted is returned by TopN before a successful Fit.
	ErrNotFitted = errors.New("recommend: topn called before fit")

	// ErrNilRatings is returned when Fit receives nil ratings.
	ErrNilRatings = errors.New("recommend: nil ratings")
)

// DefaultSeed feeds the Gaussian sketch when WithSeed is not given.
const DefaultSeed uint64 = 1

// Options configures a Recommender.
type Options struct {
	seed uint64
	dev  opu.Device
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the documented defaults: seeded software sketch,
// no device.
func DefaultOptions() Options { return Options{seed: DefaultSeed} }

// WithSeed fixes the sketch projector's random source.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithDevice sketches through dev instead of the software Gaussian: the
// demeaned matrix is binarized at 0 and pushed through the device. The
// device's output width must be at least the latent rank.
func WithDevice(dev opu.Device) Option {
	return func(o *Options) { o.dev = dev }
}

// Recommender is the end-to-end demean→sketch→SVD→rank pipeline.
type Recommender struct {
	k    int
	seed uint64
	dev  opu.Device

	fac     *rsvd.Factorization
	factors *mat.Dense // U·diag(S), items in latent space
	means   []float64  // per-user column means, for undoing the centering
	fitted  bool
}

// New creates a recommender with latent rank k.
//
// Errors: ErrBadRank.
func New(k int, opts ...Option) (*Recommender, error) {
	if k <= 0 {
		return nil, ErrBadRank
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Recommender{k: k, seed: o.seed, dev: o.dev}, nil
}

// Rank returns the latent rank k.
func (r *Recommender) Rank() int { return r.k }

// Fit runs the full pipeline on ratings. All previous fitted state is
// replaced; on error the recommender is left unfitted.
//
// Errors: ErrNilRatings, plus any projection/opu/rsvd sentinel from the
// offending stage, wrapped with the stage name.
func (r *Recommender) Fit(ratings *dataset.Ratings) error {
	if ratings == nil {
		return ErrNilRatings
	}
	r.fitted = false

	xc, means, err := ratings.Demean()
	if err != nil {
		return fmt.Errorf("recommend: demean: %w", err)
	}
	_, users := xc.Dims()

	var sketch *mat.Dense
	if r.dev != nil {
		bits := projection.Binarize(xc, 0)
		if err = r.dev.Fit(users); err != nil {
			return fmt.Errorf("recommend: device fit: %w", err)
		}
		if sketch, err = r.dev.Transform(bits); err != nil {
			return fmt.Errorf("recommend: device transform: %w", err)
		}
	} else {
		g, gerr := projection.New(r.k, projection.WithSeed(r.seed))
		if gerr != nil {
			return fmt.Errorf("recommend: projector: %w", gerr)
		}
		if err = g.Fit(users); err != nil {
			return fmt.Errorf("recommend: projector fit: %w", err)
		}
		if sketch, err = g.Transform(xc); err != nil {
			return fmt.Errorf("recommend: projector transform: %w", err)
		}
	}

	fac, err := rsvd.SVD(xc, sketch, r.k)
	if err != nil {
		return fmt.Errorf("recommend: svd: %w", err)
	}

	r.fac = fac
	r.factors = fac.ItemFactors()
	r.means = means
	r.fitted = true

	return nil
}

// TopN returns the n items most similar to item in the latent space,
// descending by cosine similarity. The query item is excluded unless
// similarity.WithQueryIncluded is passed through.
//
// Errors: ErrNotFitted, plus similarity sentinels.
func (r *Recommender) TopN(item, n int, opts ...similarity.Option) ([]similarity.Match, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}

	return similarity.TopN(r.factors, item, n, opts...)
}

// Factorization exposes the fitted rank-k factors, or nil before Fit.
func (r *Recommender) Factorization() *rsvd.Factorization { return r.fac }

// UserMeans returns the per-user column means removed during demeaning,
// or nil before Fit.
func (r *Recommender) UserMeans() []float64 { return r.means }
