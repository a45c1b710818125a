package opu

import "gonum.org/v1/gonum/mat"

// Device is the optical-processing-unit capability: a configured random
// projection with a fixed fit/transform contract.
//
// Contract:
//   - Fit(nFeatures) prepares the device for inputs of width nFeatures and
//     may be called again to reconfigure; it replaces all device state.
//   - Transform maps a binary (n, nFeatures) matrix to an (n, OutputDim())
//     matrix. Internal latency and noise characteristics are opaque;
//     callers must not assume outputs agree across distinct devices, only
//     that shapes do.
//   - OutputDim reports the configured output dimension k.
//
// Implementations must not mutate their inputs and must reject shape
// mismatches with a descriptive error rather than guessing.
type Device interface {
	Fit(nFeatures int) error
	Transform(x *mat.Dense) (*mat.Dense, error)
	OutputDim() int
}
