package projection

import (
	"fmt"

	"github.com/rishirelan/lightonml/persist"
)

// Snapshot captures the projector's configuration. The plane matrix is
// not persisted: it regenerates bit-identically from (seed, d, k).
func (g *Gaussian) Snapshot() (*persist.Snapshot, error) {
	return &persist.Snapshot{
		Kind: persist.KindGaussian,
		Seed: g.seed,
		Dims: map[string]int{"k": g.k, "d": g.d},
	}, nil
}

// FromSnapshot rebuilds a Gaussian from a loaded snapshot, refitting the
// planes when the snapshot was taken after Fit. The restored projector's
// Transform output is bit-identical to the original's.
//
// Errors: persist.ErrUnknownKind on a mismatched tag, ErrBadRank /
// ErrRankExceedsCols on corrupt dimensions.
func FromSnapshot(s *persist.Snapshot) (*Gaussian, error) {
	if err := persist.ExpectKind(s, persist.KindGaussian); err != nil {
		return nil, err
	}

	g, err := New(s.Dims["k"], WithSeed(s.Seed))
	if err != nil {
		return nil, fmt.Errorf("projection: restore: %w", err)
	}
	if d := s.Dims["d"]; d > 0 {
		if err = g.Fit(d); err != nil {
			return nil, fmt.Errorf("projection: restore: %w", err)
		}
	}

	return g, nil
}
