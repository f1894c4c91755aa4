// File: step.go
// Role: Step — one Borůvka contraction round.
package boruvka

import (
	"sort"

	"github.com/mstlab/tpmverify/core"
)

// BackEntry records what an edge in a contracted graph maps back to in the
// original, uncontracted graph: the original edge's stable ID and its
// original endpoints.
type BackEntry struct {
	OrigID int64
	OrigU  int
	OrigV  int
}

// BackMap maps a contracted graph's edge ID to the BackEntry describing
// the original edge it descends from. A nil BackMap is the identity: every
// edge of the graph passed to Step maps to itself.
type BackMap map[int64]BackEntry

func identityBackMap(g *core.Graph) BackMap {
	m := make(BackMap, g.NumEdges())
	for _, e := range g.Edges() {
		m[e.ID] = BackEntry{OrigID: e.ID, OrigU: e.From, OrigV: e.To}
	}

	return m
}

func resolve(back BackMap, e core.Edge) BackEntry {
	if back == nil {
		return BackEntry{OrigID: e.ID, OrigU: e.From, OrigV: e.To}
	}

	return back[e.ID]
}

type pairKey struct{ lo, hi int }

func makePairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Step performs one Borůvka contraction on g:
//
//  1. Every vertex selects its unique minimum-weight incident edge.
//  2. Selected edges are unioned via a fresh core.DisjointSet.
//  3. A new graph h is built with one vertex per surviving component; for
//     every g-edge whose endpoints land in different components, the
//     minimum-weight parallel edge becomes a single h-edge.
//  4. The returned BackMap composes back through to original endpoints.
//
// back may be nil, meaning g itself is the original (uncontracted) graph.
//
// Complexity: O(V + E log E).
func Step(g *core.Graph, back BackMap) (chosen []core.Edge, h *core.Graph, newBack BackMap, err error) {
	n := g.NumVertices()
	dsu := core.NewDisjointSet(n)

	minEdgeOf := make([]int64, n) // 0 = "none selected"
	minWeightOf := make([]float64, n)
	for v := 0; v < n; v++ {
		var best *core.Edge
		for _, e := range g.OutEdges(v) {
			e := e
			if best == nil || e.Weight < best.Weight {
				best = &e
			}
		}
		if best != nil {
			minEdgeOf[v] = best.ID
			minWeightOf[v] = best.Weight
		}
	}

	chosenIDs := make(map[int64]struct{})
	for v := 0; v < n; v++ {
		id := minEdgeOf[v]
		if id == 0 {
			continue
		}
		u, w, errEnds := g.Endpoints(id)
		if errEnds != nil {
			return nil, nil, nil, errEnds
		}
		dsu.Union(u, w)
		chosenIDs[id] = struct{}{}
	}

	// Assign each surviving component a new, dense vertex ID, in
	// deterministic root-ascending order (v iterates ascending, so the
	// first time a root is seen fixes its relative order).
	seen := make(map[int]int, n) // dsu root -> new vertex ID
	for v := 0; v < n; v++ {
		r := dsu.Find(v)
		if _, ok := seen[r]; !ok {
			seen[r] = len(seen)
		}
	}

	h = core.NewGraph(len(seen))
	newBack = make(BackMap)

	type best struct {
		weight float64
		entry  BackEntry
	}
	componentEdges := make(map[pairKey]best)

	for _, e := range g.Edges() {
		srcSet := seen[dsu.Find(e.From)]
		dstSet := seen[dsu.Find(e.To)]
		if srcSet == dstSet {
			continue
		}
		key := makePairKey(srcSet, dstSet)
		entry := resolve(back, e)
		if cur, ok := componentEdges[key]; !ok || e.Weight < cur.weight {
			componentEdges[key] = best{weight: e.Weight, entry: entry}
		}
	}

	for key, b := range componentEdges {
		id, errAdd := h.AddEdge(key.lo, key.hi, b.weight)
		if errAdd != nil {
			return nil, nil, nil, errAdd
		}
		newBack[id] = b.entry
	}

	chosen = make([]core.Edge, 0, len(chosenIDs))
	for id := range chosenIDs {
		u, w, _ := g.Endpoints(id)
		weight, _ := g.EdgeWeight(id)
		entry := resolve(back, core.Edge{ID: id, From: u, To: w, Weight: weight})
		chosen = append(chosen, core.Edge{ID: entry.OrigID, From: entry.OrigU, To: entry.OrigV, Weight: weight})
	}
	sort.Slice(chosen, func(i, j int) bool { return chosen[i].ID < chosen[j].ID })

	return chosen, h, newBack, nil
}
