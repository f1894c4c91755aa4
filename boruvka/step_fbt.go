// File: step_fbt.go
// Role: StepFBT — a Borůvka step specialized for building a fully-branching
//       tree: besides the contracted graph, it reports, for every
//       vertex that contributed a merge, which new component it landed in
//       and the weight of the edge that caused the merge. fbt.Build uses
//       this to attach one parent edge per surviving vertex at each level.
package boruvka

import "github.com/mstlab/tpmverify/core"

// Merge records that vertex From (in the graph passed to StepFBT) selected
// a minimum edge of weight Weight that merged it into component ToComponent
// (a vertex ID in the returned contracted graph).
type Merge struct {
	From        int
	ToComponent int
	Weight      float64
}

// StepFBT performs one Borůvka contraction, like Step, but is specialized
// for building a fully-branching tree: every vertex of g that had at least
// one incident edge contributes exactly one Merge record.
//
// Complexity: O(V + E).
func StepFBT(g *core.Graph) (h *core.Graph, merges []Merge, err error) {
	n := g.NumVertices()
	dsu := core.NewDisjointSet(n)

	type chosenEdge struct {
		id     int64
		weight float64
	}
	chosenOf := make([]chosenEdge, n)
	hasChosen := make([]bool, n)

	for v := 0; v < n; v++ {
		var best *core.Edge
		for _, e := range g.OutEdges(v) {
			e := e
			if best == nil || e.Weight < best.Weight {
				best = &e
			}
		}
		if best != nil {
			chosenOf[v] = chosenEdge{id: best.ID, weight: best.Weight}
			hasChosen[v] = true
			other := best.To
			if other == v {
				other = best.From
			}
			dsu.Union(v, other)
		}
	}

	seen := make(map[int]int, n)
	for v := 0; v < n; v++ {
		r := dsu.Find(v)
		if _, ok := seen[r]; !ok {
			seen[r] = len(seen)
		}
	}
	h = core.NewGraph(len(seen))

	componentEdges := make(map[pairKey]float64)
	for _, e := range g.Edges() {
		srcSet := seen[dsu.Find(e.From)]
		dstSet := seen[dsu.Find(e.To)]
		if srcSet == dstSet {
			continue
		}
		key := makePairKey(srcSet, dstSet)
		if cur, ok := componentEdges[key]; !ok || e.Weight < cur {
			componentEdges[key] = e.Weight
		}
	}
	for key, w := range componentEdges {
		if _, errAdd := h.AddEdge(key.lo, key.hi, w); errAdd != nil {
			return nil, nil, errAdd
		}
	}

	merges = make([]Merge, 0, n)
	for v := 0; v < n; v++ {
		if !hasChosen[v] {
			continue
		}
		merges = append(merges, Merge{
			From:        v,
			ToComponent: seen[dsu.Find(v)],
			Weight:      chosenOf[v].weight,
		})
	}

	return h, merges, nil
}
