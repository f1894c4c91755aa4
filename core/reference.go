// File: reference.go
// Role: ReferenceMSTWeight — a plain Kruskal pass used by tests as the
//       ground truth an algorithm's result is compared against.
package core

import "sort"

// ReferenceMSTWeight computes the MST weight of g via Kruskal's algorithm,
// independent of and simpler than mst.Kruskal (no Result encoding, no
// registry plumbing) so it can serve as the reference value in tests
// without creating an import cycle with package mst.
//
// Returns ErrDisconnected if fewer than NumVertices()-1 edges can be added.
//
// Complexity: O(E log E).
func (g *Graph) ReferenceMSTWeight() (float64, error) {
	n := g.NumVertices()
	if n <= 1 {
		return 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	dsu := NewDisjointSet(n)
	var total float64
	added := 0
	for _, e := range edges {
		if dsu.Union(e.From, e.To) {
			total += e.Weight
			added++
			if added == n-1 {
				break
			}
		}
	}
	if added < n-1 {
		return 0, ErrDisconnected
	}

	return total, nil
}
