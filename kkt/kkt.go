// File: kkt.go
// Role: RandomMST — the recursive Karger–Klein–Tarjan driver.
package kkt

import (
	"math/rand"

	"github.com/mstlab/tpmverify/core"
)

// RandomMST computes a minimum spanning forest of g using the randomized
// linear-expected-time algorithm, seeded for reproducible output. It
// returns the chosen edges keyed by weight rather than a
// mst.Result, so this package never needs to import mst (mst.RandomKKT
// wraps this result instead, avoiding an import cycle).
func RandomMST(g *core.Graph, seed int64) (map[float64]struct{}, error) {
	return randomMST(g, rand.New(rand.NewSource(seed)))
}

func randomMST(g *core.Graph, rng *rand.Rand) (map[float64]struct{}, error) {
	if g.NumVertices() <= 1 {
		return map[float64]struct{}{}, nil
	}

	result, h, err := twoBoruvkaRounds(g)
	if err != nil {
		return nil, err
	}
	if h.NumVertices() <= 1 || h.NumEdges() == 0 {
		// No edges left to contend with: the remaining vertices are either
		// isolated or already fully merged, so sampling and recursing
		// further would make no progress (this also covers disconnected
		// inputs, where some components never acquire a cross-component
		// edge to contract).
		return result, nil
	}

	sample, err := sampleBernoulli(h, rng)
	if err != nil {
		return nil, err
	}

	forestPrime, err := randomMST(sample, rng)
	if err != nil {
		return nil, err
	}

	light, err := removeHeavyEdges(h, forestPrime)
	if err != nil {
		return nil, err
	}

	residual, err := randomMST(light, rng)
	if err != nil {
		return nil, err
	}
	for w := range residual {
		result[w] = struct{}{}
	}

	return result, nil
}
