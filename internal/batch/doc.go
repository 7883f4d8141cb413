// Package batch implements the batch query pipeline: validation,
// deduplication, single-evaluation-per-distinct-bound caching, and
// order-preserving result expansion.
//
// The pipeline guarantees two invariants: the output slice is positionally
// aligned with the input (results[i] answers queries[i]), and the underlying
// formula is evaluated exactly once per distinct bound regardless of how many
// times that bound repeats in the batch.
package batch
