// Package sorting implements the ordering policies and the merge sort engine.
//
// It is intentionally split into:
//   - Policy: a closed set of strict weak orderings over lines
//   - Sort: a stable, comparator-driven merge sort parametrized by a Policy
//
// Comparison is raw byte order, which for the ASCII/UTF-8 inputs this tool
// accepts is code-point order (uppercase letters sort before lowercase).
package sorting
