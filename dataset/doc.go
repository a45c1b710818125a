// Package dataset ingests and preprocesses dense rating matrices for the
// projection/decomposition pipeline.
//
// A rating matrix has items as rows and users as columns. Unobserved
// ratings are carried as the NaN missing sentinel (see IsMissing) until
// Demean replaces them: each column is centered on the mean of its
// observed entries and missing cells become exact zeros, so downstream
// stages only ever see finite values.
//
// The package also ships BlockClusters, a seeded generator of
// block-diagonal preference matrices used throughout the tests and
// examples to exercise the end-to-end recommender.
//
// All operations are deterministic, single-pass, and allocate fresh
// results; no input matrix is ever mutated.
package dataset
