// Package diff computes and applies minimal edit sequences between two
// strings, carries enough metadata to relocate a patch inside a larger
// document, and serializes to a line-prefixed ASCII patch format.
//
// Five generators (Zoom, Flash, Starscream, Optimus, Megatron) trade
// granularity for speed; all of them are guaranteed correct by construction
// because Create verifies the result and falls back to Zoom on mismatch.
// Every entry point in this package is a pure function: no I/O, no
// goroutines, no package-level mutable state.
package diff
