// Package persist: sentinel error set. Tests match via errors.Is.
package persist

import "errors"

var (
	// ErrNilSnapshot is returned when a nil Snapshot or Snapshotter is
	// passed.
	ErrNilSnapshot = errors.New("persist: nil snapshot")

	// ErrSchemaVersion is returned when a loaded snapshot carries a
	// schema version this build does not understand.
	ErrSchemaVersion = errors.New("persist: unsupported schema version")

	// ErrUnknownKind is returned when the kind tag is empty, unknown, or
	// handed to the wrong FromSnapshot constructor.
	ErrUnknownKind = errors.New("persist: unknown transformer kind")

	// ErrDecode is returned when the payload is not valid snapshot JSON.
	ErrDecode = errors.New("persist: malformed snapshot payload")
)
