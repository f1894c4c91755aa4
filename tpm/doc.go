// Package tpm implements the Komlós/King/Hagerup tree-path-maxima
// algorithm: given a fully-branching tree and a batch of
// bottom-up leaf-to-ancestor queries, it answers each with the vertex
// whose edge to its parent is the heaviest on the open path from leaf up
// to (but not including) ancestor.
//
// The algorithm runs in O(n + q) after an O(2^d) median-table
// precomputation, where d is the tree's depth — negligible for FBTs built
// from spanning trees (d = O(log n)). It relies on query_sets bitmasks
// propagated up the tree and a constant-time binary search over a
// precomputed table of depth-subset medians (the "Komlós bit trick").
package tpm
