// File: build.go
// Role: Build — st_to_fbt: iterated Borůvka contraction on a
//       spanning tree, recording one internal node and one parent edge per
//       surviving component at every level.
package fbt

import (
	"math"

	"github.com/mstlab/tpmverify/boruvka"
	"github.com/mstlab/tpmverify/core"
)

// Build converts spanning tree `tree` (a connected, acyclic core.Graph on n
// vertices) into a Fully-Branching Tree. It returns the FBT, a leaf map
// (leafOf[v] is the FBT node representing original vertex v — this
// implementation numbers leaves identically to the input, so leafOf is the
// identity), and the FBT's root.
//
// Termination: each Borůvka step strictly decreases the vertex count of a
// tree until exactly one remains.
//
// Complexity: O(n log n).
func Build(tree *core.Graph) (*Tree, []int, int, error) {
	n := tree.NumVertices()

	leafOf := make([]int, n)
	for v := 0; v < n; v++ {
		leafOf[v] = v
	}

	t := &Tree{
		NumNodes:     n,
		NumLeaves:    n,
		Parent:       make([]int, n),
		ParentWeight: make([]float64, n),
		Children:     make([][]int, n),
	}
	for v := 0; v < n; v++ {
		t.Parent[v] = -1
		t.ParentWeight[v] = math.Inf(-1)
	}

	if n <= 1 {
		t.Root = 0
		return t, leafOf, 0, nil
	}

	addNode := func() int {
		id := t.NumNodes
		t.NumNodes++
		t.Parent = append(t.Parent, -1)
		t.ParentWeight = append(t.ParentWeight, math.Inf(-1))
		t.Children = append(t.Children, nil)
		return id
	}

	current := tree
	// reducedPrevToFBT[v] is the FBT node standing in for vertex v of
	// `current` at this iteration.
	reducedPrevToFBT := make([]int, n)
	for v := 0; v < n; v++ {
		reducedPrevToFBT[v] = v
	}

	lastAdded := -1
	for current.NumVertices() > 1 {
		h, merges, err := boruvka.StepFBT(current)
		if err != nil {
			return nil, nil, 0, err
		}

		reducedToFBT := make([]int, h.NumVertices())
		for i := range reducedToFBT {
			reducedToFBT[i] = -1
		}

		for _, m := range merges {
			srcFBT := reducedPrevToFBT[m.From]
			dstFBT := reducedToFBT[m.ToComponent]
			if dstFBT == -1 {
				dstFBT = addNode()
				reducedToFBT[m.ToComponent] = dstFBT
				lastAdded = dstFBT
			}
			t.Parent[srcFBT] = dstFBT
			t.ParentWeight[srcFBT] = m.Weight
			t.Children[dstFBT] = append(t.Children[dstFBT], srcFBT)
		}

		reducedPrevToFBT = reducedToFBT
		current = h
	}

	t.Root = lastAdded

	return t, leafOf, lastAdded, nil
}
