// File: random_kkt.go
// Role: RandomKKT — wraps kkt.RandomMST into the shared Result protocol.
package mst

import (
	"github.com/mstlab/tpmverify/core"
	"github.com/mstlab/tpmverify/kkt"
)

// RandomKKT computes a minimum spanning forest with the randomized
// Karger–Klein–Tarjan algorithm, seeded for reproducible output.
// kkt.RandomMST reports its chosen edges by weight rather than ID (to
// avoid kkt importing this package); RandomKKT resolves each weight back to
// its stable edge ID via a weight→ID index built from g.Edges(), relying on
// the unique-edge-weight assumption to make that lookup unambiguous.
func RandomKKT(g *core.Graph, seed int64) (Result, error) {
	weights, err := kkt.RandomMST(g, seed)
	if err != nil {
		return Result{}, err
	}

	idByWeight := make(map[float64]int64, len(weights))
	for _, e := range g.Edges() {
		idByWeight[e.Weight] = e.ID
	}

	ids := make([]int64, 0, len(weights))
	for w := range weights {
		id, ok := idByWeight[w]
		if !ok {
			return Result{}, ErrAlgorithmFailure
		}
		ids = append(ids, id)
	}

	return Result{Kind: KindEdgeIDs, EdgeIDs: ids}, nil
}
