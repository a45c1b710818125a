package similarity

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Match pairs a row index with its cosine similarity to the query.
type Match struct {
	Index int
	Score float64
}

// Options configures TopN.
type Options struct {
	includeQuery bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: query excluded.
func DefaultOptions() Options { return Options{} }

// WithQueryIncluded keeps the query row in its own ranking. A nonzero
// query then leads the list with similarity 1.
func WithQueryIncluded() Option {
	return func(o *Options) { o.includeQuery = true }
}

// Cosine returns the cosine similarity of a and b, or 0 when either has
// zero magnitude (the similarity is undefined there; 0 is the documented
// fallback, not an error).
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}

	return floats.Dot(a, b) / (na * nb)
}

// TopN returns the n rows of d most cosine-similar to row query, ordered
// descending by score with exact ties broken by ascending index. n clamps
// to the number of candidates.
//
// Stage 1 (Validate): d non-nil, query in range, n > 0.
// Stage 2 (Score): one pass, reusing the query's precomputed norm.
// Stage 3 (Rank): deterministic sort, slice to n.
//
// Errors: ErrNilMatrix, ErrQueryRange, ErrBadCount.
func TopN(d *mat.Dense, query, n int, opts ...Option) ([]Match, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := d.Dims()
	if query < 0 || query >= rows {
		return nil, ErrQueryRange
	}
	if n <= 0 {
		return nil, ErrBadCount
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := make([]float64, cols)
	mat.Row(q, query, d)
	nq := floats.Norm(q, 2)

	row := make([]float64, cols)
	matches := make([]Match, 0, rows)
	for i := 0; i < rows; i++ {
		if i == query && !o.includeQuery {
			continue
		}
		mat.Row(row, i, d)
		score := 0.0
		if nr := floats.Norm(row, 2); nq != 0 && nr != 0 {
			score = floats.Dot(q, row) / (nq * nr)
		}
		matches = append(matches, Match{Index: i, Score: score})
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}

		return matches[a].Index < matches[b].Index
	})

	if n > len(matches) {
		n = len(matches)
	}

	return matches[:n:n], nil
}
