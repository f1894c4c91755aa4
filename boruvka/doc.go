// Package boruvka implements one Borůvka contraction step — the building
// block shared by the classical Borůvka MST driver, the FBT builder
// (package fbt), and the randomized KKT driver (package kkt).
//
// A Step takes a (possibly already-contracted) graph and an optional
// BackMap translating its edges back to the original graph's vertex pairs,
// and returns the set of edges the step chose, the contracted graph, and a
// composed BackMap for the next level.
package boruvka
