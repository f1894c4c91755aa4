package mst_test

import (
	"math/rand"

	"github.com/mstlab/tpmverify/core"
)

// randomConnectedGraph builds a random spanning tree over n vertices plus
// extraEdges additional random chords, all with distinct weights so the MST
// is unique.
func randomConnectedGraph(n, extraEdges int, seed int64) *core.Graph {
	g := core.NewGraph(n)
	r := rand.New(rand.NewSource(seed))
	next := 1.0
	weight := func() float64 {
		w := next
		next += 1 + r.Float64()
		return w
	}
	for i := 1; i < n; i++ {
		parent := r.Intn(i)
		_, _ = g.AddEdge(parent, i, weight())
	}
	for i := 0; i < extraEdges; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(u, v, weight())
	}
	return g
}
