// Package lightonml is a toolbox for building machine-learning pipelines
// around fast random linear projections — the operation an optical
// processing unit (OPU) performs in hardware — entirely in memory and
// entirely in Go.
//
// 🚀 What is lightonml?
//
//	A deterministic, side-effect-free library that brings together:
//		• Rating-matrix preprocessing: missing-value handling & demeaning
//		• Random projections: seeded Gaussian maps with a JL-style contract
//		• OPU abstraction: one Device interface, simulated or real hardware
//		• Randomized SVD: interpolative decomposition + QR + small exact SVD
//		• Cosine similarity ranking: top-N recommendations over factor rows
//		• Binary autoencoder: learned {0,1} input encodings for the OPU
//		• Pipelines & grid search: typed fit/transform stages, no reflection
//		• Persistence: versioned snapshots of fitted transformers
//
// ✨ Why choose lightonml?
//
//   - Deterministic — every random draw flows from an explicit seed
//   - Pure functions — no global state, no I/O, no hidden mutation
//   - gonum under the hood — mature SVD/QR kernels, never hand-rolled
//   - Swappable hardware — simulated and physical OPUs share one contract
//
// Everything is organized under small topic packages:
//
//	dataset/    — rating matrices, missing sentinels, demeaning
//	projection/ — seeded Gaussian random projections & binarization
//	opu/        — the optical-processing-unit Device capability
//	rsvd/       — interpolative decomposition & randomized SVD
//	similarity/ — cosine top-N ranking over factor matrices
//	encoder/    — binary autoencoder trained with Adam
//	pipeline/   — ordered typed stages & exhaustive grid search
//	recommend/  — end-to-end demean→project→SVD→rank recommender
//	persist/    — versioned JSON snapshots of fitted transformers
//
// Data flows strictly left to right:
//
//	ratings ──demean──▶ project ──▶ decompose ──▶ assemble SVD ──▶ rank
//
// No component retains state across calls beyond the fitted state a
// transformer value carries explicitly.
//
//	go get github.com/rishirelan/lightonml
package lightonml
