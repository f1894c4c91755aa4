// File: sample.go
// Role: Bernoulli(1/2) edge sampling and the two-Borůvka-contraction step
// (steps 2 and 4).
package kkt

import (
	"math/rand"

	"github.com/mstlab/tpmverify/boruvka"
	"github.com/mstlab/tpmverify/core"
)

// twoBoruvkaRounds contracts g through two Borůvka steps, threading the
// BackMap from the first step into the second so the second step's chosen
// edges resolve all the way back to g's original edge IDs and endpoints —
// this is the correction of original_source/src/randomKKT.cpp's bug, which
// re-contracts the same graph instead of advancing to the previous step's
// output.
func twoBoruvkaRounds(g *core.Graph) (map[float64]struct{}, *core.Graph, error) {
	result := make(map[float64]struct{})

	chosen1, h1, back1, err := boruvka.Step(g, nil)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range chosen1 {
		result[e.Weight] = struct{}{}
	}
	if h1.NumVertices() <= 1 {
		return result, h1, nil
	}

	chosen2, h2, _, err := boruvka.Step(h1, back1)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range chosen2 {
		result[e.Weight] = struct{}{}
	}

	return result, h2, nil
}

// sampleBernoulli keeps each edge of g independently with probability 1/2.
func sampleBernoulli(g *core.Graph, rng *rand.Rand) (*core.Graph, error) {
	out := core.NewGraph(g.NumVertices())
	for _, e := range g.Edges() {
		if rng.Intn(2) == 1 {
			if _, err := out.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
