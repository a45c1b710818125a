// Package projection computes seeded Gaussian random projections — the
// software stand-in for the linear map an optical processing unit applies
// in hardware.
//
// 🚀 What is a random projection?
//
//	A linear embedding X (n×d) ↦ Y = X·R (n×k), k < d, whose entries are
//	drawn i.i.d. from N(0, 1/k). By the Johnson–Lindenstrauss lemma such a
//	map approximately preserves pairwise distances and angles of the rows,
//	which is all a downstream randomized decomposition needs.
//
// ✨ Key features:
//   - explicit Fit(d) / Transform(X) contract shared with opu.Device
//   - deterministic: the plane matrix flows from a single Seed option
//   - fatal, descriptive errors on any shape mismatch (never silent)
//   - Binarize helper producing the {0,1} encodings an OPU ingests
//
// ⚙️ Usage:
//
//	g, err := projection.New(64, projection.WithSeed(7))
//	if err != nil { ... }
//	if err = g.Fit(cols); err != nil { ... }     // layout planes for d=cols
//	Y, err := g.Transform(X)                     // (rows×cols) → (rows×64)
//
// Complexity: Fit O(d·k) memory, Transform O(n·d·k) time via one dense
// multiply.
package projection
