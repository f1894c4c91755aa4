// Package lca implements the Farach-Colton–Bender constant-time lowest
// common ancestor oracle: an Euler tour of the rooted tree
// turns LCA into a ±1 range-minimum-query problem, answered by a two-level
// scheme — a sparse table over fixed-size blocks, plus a precomputed
// argmin table per block "shape" (its sequence of height +/- transitions),
// since only O(2^b) distinct shapes exist for block size b.
//
// Construction costs O((n+m) log n); queries are O(1).
package lca
