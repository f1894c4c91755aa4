// Package fbt builds a Fully-Branching Tree (FBT) from a spanning tree via
// iterated Borůvka contraction ("st_to_fbt").
//
// An FBT's original vertices appear only as leaves; every internal node has
// at least two children, all leaves share the same depth, and each
// non-root node's edge to its parent carries the weight of the Borůvka
// minimum edge that caused its merge. This shape is what lets package lca
// and package tpm answer leaf-to-ancestor tree-path-maxima queries in
// O(1)/O(n+q) instead of walking the original spanning tree directly.
package fbt
