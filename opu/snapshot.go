package opu

import (
	"fmt"

	"github.com/rishirelan/lightonml/persist"
)

// Snapshot captures the simulated device's configuration. The
// transmission matrix regenerates bit-identically from (seed, d, k), so
// only the scalars travel.
func (s *Simulated) Snapshot() (*persist.Snapshot, error) {
	return &persist.Snapshot{
		Kind:  persist.KindSimulated,
		Seed:  s.seed,
		Dims:  map[string]int{"k": s.k, "d": s.d},
		Flags: map[string]bool{"linear": s.linear, "strict": s.strict},
	}, nil
}

// FromSnapshot rebuilds a Simulated device from a loaded snapshot,
// refitting when the snapshot was taken after Fit.
//
// Errors: persist.ErrUnknownKind, ErrBadOutputDim, ErrDimension.
func FromSnapshot(snap *persist.Snapshot) (*Simulated, error) {
	if err := persist.ExpectKind(snap, persist.KindSimulated); err != nil {
		return nil, err
	}

	var opts []Option
	opts = append(opts, WithSeed(snap.Seed))
	if snap.Flags["linear"] {
		opts = append(opts, WithLinear())
	}
	if snap.Flags["strict"] {
		opts = append(opts, WithStrictBinary())
	}

	dev, err := NewSimulated(snap.Dims["k"], opts...)
	if err != nil {
		return nil, fmt.Errorf("opu: restore: %w", err)
	}
	if d := snap.Dims["d"]; d > 0 {
		if err = dev.Fit(d); err != nil {
			return nil, fmt.Errorf("opu: restore: %w", err)
		}
	}

	return dev, nil
}
