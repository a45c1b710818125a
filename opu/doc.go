// Package opu abstracts the Optical Processing Unit — proprietary hardware
// that performs fast random linear projections at the speed of light — as
// an injected capability with one fixed contract.
//
// The contract (Device): given a binary input matrix of shape (n, d) and a
// configured output dimension k, Transform returns an (n, k) matrix. What
// happens between input and output — latency, photon noise, calibration —
// is opaque to the caller; pipeline code must treat a Device as a black
// box and never assume bit-reproducibility across physical devices.
//
// Simulated is the in-package software implementation: a seeded random
// matrix R with the intensity nonlinearity y = |R·x|² that the optics
// physically compute. It is deterministic for a fixed seed, which makes it
// the reference Device for tests, examples, and machines without the
// hardware. Real-hardware bindings satisfy the same interface, so swapping
// simulation for silicon (well, glass) changes no pipeline code.
package opu
