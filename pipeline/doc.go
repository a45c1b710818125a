// Package pipeline composes fit/transform stages into an explicit ordered
// list and searches parameter grids exhaustively — the statically typed
// counterpart of the dynamic Pipeline/GridSearchCV workflow, with no
// reflection and no parameter injection.
//
// A Stage is anything with Fit(X), Transform(X) and a Name. A Pipeline
// fits stages left to right, feeding each stage the previous stage's
// transformed output; a stage failure is wrapped with the stage's name so
// the offending stage is always identifiable from the error alone.
//
// GridSearch enumerates the cartesian product of a Grid in deterministic
// (sorted-key, odometer) order, builds a fresh Pipeline per combination
// through a caller-supplied constructor, and keeps the best score;
// exact score ties keep the earlier combination.
//
// Adapters are provided for the library's transformers:
//
//	Project(g)   — projection.Gaussian, fitting to the incoming width
//	OnDevice(d)  — any opu.Device
//	Encode(ae)   — encoder.Autoencoder, training on the incoming matrix
//	Binarize(th) — stateless thresholding stage
package pipeline
