// File: tree.go
// Role: Tree — the FBT node/edge representation consumed by package lca
//       and package tpm.
package fbt

import "math"

// Tree is a rooted, fully-branching tree. Nodes [0, NumLeaves) are the
// original spanning tree's vertices; nodes [NumLeaves, NumNodes) are
// internal nodes introduced by successive Borůvka contractions.
type Tree struct {
	NumNodes     int
	NumLeaves    int
	Root         int
	Parent       []int     // Parent[v] == -1 for the root
	ParentWeight []float64 // weight of (v, Parent[v]); -Inf for the root
	Children     [][]int
}

// WeightToParent returns the weight of v's edge to its parent, or
// negative infinity if v is the root.
func (t *Tree) WeightToParent(v int) float64 {
	if v == t.Root {
		return math.Inf(-1)
	}

	return t.ParentWeight[v]
}
