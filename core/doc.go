// Package core defines the Graph and Edge types (vertices are plain ints)
// shared by every MST algorithm and verification component in this module.
//
// A Graph is undirected, weighted, and addressed by dense integer vertex
// IDs in [0, NumVertices); this is the representation every downstream
// package (boruvka, fbt, lca, tpm, mstverify, kkt, mst) builds on, so that
// contraction, Euler-tour, and tree-path-maxima code can all index straight
// into flat slices instead of walking maps keyed by string IDs.
//
// Edges carry a stable int64 ID assigned at construction time. That ID,
// not the edge's weight, is what downstream Borůvka-style contractions
// carry forward as an edge's identity — weight is used only for ordering
// and for summing totals. See DESIGN.md for why: an earlier design used
// weight as an identity key, which only works when weights are unique and
// stops being a safe habit the moment that invariant is relaxed.
//
// Why use core.Graph?
//
//   - One type, two invariants (no self-loops, no parallel edges) instead
//     of a type hierarchy — every algorithm package takes a *Graph.
//   - O(1) edge/weight/endpoint lookup by ID, O(degree) adjacency walks.
//   - Deterministic iteration: Edges() and OutEdges() are sorted by ID, so
//     two runs over the same graph always process edges in the same order.
//   - Clone() returns an independent deep copy. The contraction code
//     (Borůvka, FBT, KKT recursion) does not call it: every level builds a
//     fresh graph, so the caller's graph is never touched.
package core
