// Package similarity ranks rows of a factor matrix by cosine similarity
// to a query row and returns the top-N matches.
//
// Contract highlights:
//   - Scores are cosine similarities in [-1, 1]; a zero-magnitude row
//     (query or candidate) scores exactly 0 — never NaN, never an error.
//   - Results are ordered descending by score; exact ties break stably by
//     ascending row index.
//   - The query row is excluded from its own ranking by default; opt in
//     with WithQueryIncluded, in which case a nonzero query leads the
//     list with score 1.
//   - n larger than the candidate count clamps to what exists.
//
// Every call is a single pass over the matrix plus an O(r log r) sort;
// deterministic, side-effect-free, no state between calls.
package similarity
