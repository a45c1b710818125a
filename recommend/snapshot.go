package recommend

import (
	"fmt"

	"github.com/rishirelan/lightonml/persist"
)

// Snapshot captures the recommender's configuration: latent rank and
// sketch seed. Fitted factors are derived state — refitting on the same
// ratings reproduces them bit-identically — so they are not persisted.
// A device-backed recommender snapshots its configuration only; the
// device itself is persisted separately (opu.Simulated implements
// persist.Snapshotter too).
func (r *Recommender) Snapshot() (*persist.Snapshot, error) {
	return &persist.Snapshot{
		Kind: persist.KindRecommender,
		Seed: r.seed,
		Dims: map[string]int{"k": r.k},
	}, nil
}

// FromSnapshot rebuilds an unfitted Recommender from a loaded snapshot.
//
// Errors: persist.ErrUnknownKind, ErrBadRank.
func FromSnapshot(s *persist.Snapshot, opts ...Option) (*Recommender, error) {
	if err := persist.ExpectKind(s, persist.KindRecommender); err != nil {
		return nil, err
	}

	opts = append([]Option{WithSeed(s.Seed)}, opts...)
	rec, err := New(s.Dims["k"], opts...)
	if err != nil {
		return nil, fmt.Errorf("recommend: restore: %w", err)
	}

	return rec, nil
}
