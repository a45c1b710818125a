// Package encoder trains a binary autoencoder: a learned mapping from
// real-valued feature rows to the {0,1} codes an optical processing unit
// ingests.
//
// 🚀 How it works
//
//	A single hidden layer is trained to reconstruct its input:
//
//	  codes  = tanh(X·W₁ + b₁)         (n×code, the relaxed bits)
//	  X̂      = codes·W₂ + b₂           (n×in, the reconstruction)
//
//	Fit minimizes mean squared reconstruction error with Adam (β₁ = 0.9,
//	β₂ = 0.999, ε = 1e-8), full batch, manual gradients. Encode then
//	hardens the relaxation: bit j is 1 exactly when the pre-activation
//	X·W₁ + b₁ is positive.
//
// Training is deterministic for a fixed seed: weight initialization is
// the only random draw, and every epoch is a pure full-batch pass.
//
// ⚙️ Usage:
//
//	ae, err := encoder.New(in, code, encoder.WithSeed(3))
//	report, err := ae.Fit(x)        // report.Loss tracks per-epoch MSE
//	bits, err := ae.Encode(x)       // (n×code) matrix of exact 0/1 values
//
// Pair Encode's output with opu.Device — strict devices accept it as-is.
package encoder
