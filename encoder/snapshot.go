package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/persist"
)

// Snapshot captures the autoencoder's configuration and, when fitted,
// its learned weights as flat row-major arrays. Unlike the seeded
// projectors, trained weights cannot be regenerated, so they travel in
// full.
func (a *Autoencoder) Snapshot() (*persist.Snapshot, error) {
	s := &persist.Snapshot{
		Kind:  persist.KindAutoencoder,
		Seed:  a.seed,
		Dims:  map[string]int{"in": a.in, "code": a.code},
		Flags: map[string]bool{"fitted": a.fitted},
	}
	if a.fitted {
		s.Coefs = map[string][]float64{
			"w1": flatCopy(a.w1.RawMatrix().Data),
			"b1": flatCopy(a.b1),
			"w2": flatCopy(a.w2.RawMatrix().Data),
			"b2": flatCopy(a.b2),
		}
	}

	return s, nil
}

// FromSnapshot rebuilds an Autoencoder from a loaded snapshot. A fitted
// snapshot restores the learned weights directly, without retraining, so
// Encode output is bit-identical to the original's.
//
// Errors: persist.ErrUnknownKind, ErrBadDims, ErrDimension when the
// coefficient arrays do not match the declared dimensions.
func FromSnapshot(s *persist.Snapshot) (*Autoencoder, error) {
	if err := persist.ExpectKind(s, persist.KindAutoencoder); err != nil {
		return nil, err
	}

	ae, err := New(s.Dims["in"], s.Dims["code"], WithSeed(s.Seed))
	if err != nil {
		return nil, fmt.Errorf("encoder: restore: %w", err)
	}
	if !s.Flags["fitted"] {
		return ae, nil
	}

	in, code := ae.in, ae.code
	w1, b1 := s.Coefs["w1"], s.Coefs["b1"]
	w2, b2 := s.Coefs["w2"], s.Coefs["b2"]
	if len(w1) != in*code || len(b1) != code || len(w2) != code*in || len(b2) != in {
		return nil, fmt.Errorf("encoder: restore coefficient shapes: %w", ErrDimension)
	}

	ae.w1 = mat.NewDense(in, code, flatCopy(w1))
	ae.b1 = flatCopy(b1)
	ae.w2 = mat.NewDense(code, in, flatCopy(w2))
	ae.b2 = flatCopy(b2)
	ae.fitted = true

	return ae, nil
}

func flatCopy(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
