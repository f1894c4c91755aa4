// File: kruskal.go
// Role: Kruskal — sort + core.DisjointSet.
// Grounded on prim_kruskal.Kruskal, generalized from string vertex IDs and
// int64 weights to the dense-integer/float64 model in package core.
package mst

import (
	"sort"

	"github.com/mstlab/tpmverify/core"
)

// Kruskal computes an MST by sorting edges ascending and scanning them
// into a union-find, skipping any edge that would close a cycle.
//
// Complexity: O(E log E).
func Kruskal(g *core.Graph) (Result, error) {
	n := g.NumVertices()
	if n <= 1 {
		return Result{Kind: KindEdgeIDs, EdgeIDs: []int64{}}, nil
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	dsu := core.NewDisjointSet(n)
	ids := make([]int64, 0, n-1)
	for _, e := range edges {
		if dsu.Union(e.From, e.To) {
			ids = append(ids, e.ID)
			if len(ids) == n-1 {
				break
			}
		}
	}

	if len(ids) < n-1 {
		return Result{}, ErrAlgorithmFailure
	}

	return Result{Kind: KindEdgeIDs, EdgeIDs: ids}, nil
}
