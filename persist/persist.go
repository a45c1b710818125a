package persist

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// SchemaVersion is the version Save stamps on every snapshot. Load
// accepts this version only; schema evolution bumps it and adds explicit
// migration, never silent reinterpretation.
const SchemaVersion = 1

// Kind tags for the transformers this library persists.
const (
	KindGaussian    = "projection.gaussian"
	KindSimulated   = "opu.simulated"
	KindAutoencoder = "encoder.autoencoder"
	KindRecommender = "recommend.recommender"
)

// knownKinds gates Load: a tag outside this set is a hard error.
var knownKinds = map[string]bool{
	KindGaussian:    true,
	KindSimulated:   true,
	KindAutoencoder: true,
	KindRecommender: true,
}

// Snapshot is the flat, versioned persistence schema shared by every
// transformer. Only plain JSON-friendly data lives here.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version"`
	Kind          string `json:"kind"`

	// Dims holds named integer dimensions ("k", "d", "in", "code", ...).
	Dims map[string]int `json:"dims,omitempty"`

	// Seed regenerates every random draw of the transformer.
	Seed uint64 `json:"seed,omitempty"`

	// Flags holds named booleans ("linear", "strict", "fitted", ...).
	Flags map[string]bool `json:"flags,omitempty"`

	// Coefs holds learned coefficients as named flat arrays, row-major.
	Coefs map[string][]float64 `json:"coefs,omitempty"`
}

// Snapshotter is implemented by every persistable transformer.
type Snapshotter interface {
	Snapshot() (*Snapshot, error)
}

// Save stamps the current schema version on src's snapshot and writes it
// to w as JSON.
//
// Errors: ErrNilSnapshot, ErrUnknownKind, plus writer errors.
func Save(w io.Writer, src Snapshotter) error {
	if src == nil {
		return ErrNilSnapshot
	}
	s, err := src.Snapshot()
	if err != nil {
		return err
	}
	if s == nil {
		return ErrNilSnapshot
	}
	if !knownKinds[s.Kind] {
		return fmt.Errorf("persist: save kind %q: %w", s.Kind, ErrUnknownKind)
	}
	s.SchemaVersion = SchemaVersion

	enc := json.NewEncoder(w)

	return enc.Encode(s)
}

// Load reads one snapshot from r and validates its version and kind.
// Reconstruction of the concrete transformer is done by the owning
// package's FromSnapshot.
//
// Errors: ErrDecode, ErrSchemaVersion, ErrUnknownKind.
func Load(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("persist: %v: %w", err, ErrDecode)
	}
	if s.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("persist: load version %d, supported %d: %w",
			s.SchemaVersion, SchemaVersion, ErrSchemaVersion)
	}
	if !knownKinds[s.Kind] {
		return nil, fmt.Errorf("persist: load kind %q: %w", s.Kind, ErrUnknownKind)
	}

	return &s, nil
}

// ExpectKind is a small guard for FromSnapshot constructors: it verifies
// s is non-nil and tagged with kind.
func ExpectKind(s *Snapshot, kind string) error {
	if s == nil {
		return ErrNilSnapshot
	}
	if s.Kind != kind {
		return fmt.Errorf("persist: got kind %q, want %q: %w", s.Kind, kind, ErrUnknownKind)
	}

	return nil
}
