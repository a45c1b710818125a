// Package persist saves and loads fitted transformers through an explicit
// versioned schema — never opaque whole-object snapshotting.
//
// A Snapshot is plain data: a schema version, a kind tag, integer
// dimensions, the random seed, and any learned coefficients as flat
// float64 arrays. Save encodes it as JSON (goccy/go-json); Load decodes
// and validates it. Reconstruction is the owning package's job: each
// transformer ships a FromSnapshot constructor that checks the kind tag
// and rebuilds the concrete value, so persist depends on nothing and
// nothing depends on persist's internals.
//
// Round-trip guarantee: for seeded transformers, save → load →
// FromSnapshot → Transform reproduces the original output bit for bit,
// because all randomness is regenerated from the persisted seed.
//
// Unknown schema versions and kind tags fail loudly (ErrSchemaVersion,
// ErrUnknownKind); there is no silent best-effort decoding.
package persist
