// Package ingest turns a set of input files into one combined line sequence.
//
// It is split into:
//   - Acceptable: the line validator (alphabetic-only lines)
//   - FileSource: per-file reading with non-fatal degradation
//   - Sequential / Concurrent: the two collection strategies
//
// Both strategies produce the same combined sequence for the same file list:
// per-file line order is preserved, and files are concatenated in discovery
// order regardless of how the concurrent tasks interleave.
package ingest
