// Package recommend wires the whole pipeline into an item recommender:
// demean the rating matrix, sketch it through a random projection
// (software Gaussian or an OPU device), assemble a randomized SVD, and
// rank items by cosine similarity in the latent factor space.
//
//	ratings ──demean──▶ sketch ──▶ rsvd.SVD ──▶ U·diag(S) ──▶ similarity.TopN
//
// A Recommender carries no state besides what Fit computes; calling Fit
// again replaces everything. Results are deterministic for a fixed seed.
//
// ⚙️ Usage:
//
//	rec, _ := recommend.New(2, recommend.WithSeed(7))
//	if err := rec.Fit(ratings); err != nil { ... }
//	top, err := rec.TopN(item, 3)     // cluster-mates first
package recommend
