// File: mstverify.go
// Role: HeavyEdges — the verification driver.
package mstverify

import (
	"github.com/mstlab/tpmverify/core"
	"github.com/mstlab/tpmverify/fbt"
	"github.com/mstlab/tpmverify/lca"
	"github.com/mstlab/tpmverify/tpm"
)

// Query is a candidate non-tree edge (u, v, w) to verify against tree.
type Query struct {
	U, V int
	W    float64
}

// HeavyEdges returns the set of heavy edge weights among tree's edges and
// queries's candidate edges: for each query, the path between u and v in
// tree carries some maximum weight m. If m > w the tree edge of weight m
// is heavy; otherwise the candidate edge itself is heavy. The returned
// set is keyed by max(w, m) in both cases, relying on the unique-weight
// assumption to identify the edge from its weight.
func HeavyEdges(tree *core.Graph, queries []Query) (map[float64]struct{}, error) {
	heavy := make(map[float64]struct{}, len(queries))
	if len(queries) == 0 {
		return heavy, nil
	}

	f, leafOf, root, err := fbt.Build(tree)
	if err != nil {
		return nil, err
	}
	o := lca.Build(f, root)

	pathQueries := make([]tpm.Query, 0, 2*len(queries))
	for _, q := range queries {
		a := o.LCA(leafOf[q.U], leafOf[q.V])
		pathQueries = append(pathQueries,
			tpm.Query{Leaf: leafOf[q.U], Ancestor: a},
			tpm.Query{Leaf: leafOf[q.V], Ancestor: a},
		)
	}

	answers := tpm.Answer(f, o, pathQueries)

	for i, q := range queries {
		w1 := f.WeightToParent(answers[2*i])
		w2 := f.WeightToParent(answers[2*i+1])
		m := w1
		if w2 > m {
			m = w2
		}
		heavyWeight := q.W
		if m > heavyWeight {
			heavyWeight = m
		}
		heavy[heavyWeight] = struct{}{}
	}

	return heavy, nil
}
