// File: result.go
// Role: Result — the tagged-union MST output protocol.
package mst

import (
	"errors"

	"github.com/mstlab/tpmverify/core"
)

// ErrAlgorithmFailure indicates an algorithm could not produce a valid
// spanning tree (e.g. the graph turned out disconnected mid-run).
var ErrAlgorithmFailure = errors.New("mst: algorithm failure")

// Kind discriminates Result's active representation.
type Kind int

const (
	// KindEdgeIDs — Result.EdgeIDs names the chosen core.Edge.ID values.
	KindEdgeIDs Kind = iota
	// KindPairs — Result.Pairs names chosen (u, v, weight) triples.
	KindPairs
	// KindPredecessor — Result.Predecessor[v] is v's parent in the tree,
	// -1 for the root, alongside the weight of that parent edge.
	KindPredecessor
)

// Pair is a chosen MST edge named by its endpoints and weight, used by
// algorithms (Borůvka) whose natural output has no stable edge ID.
type Pair struct {
	U, V   int
	Weight float64
}

// Result is the tagged-union MST output every algorithm in this package
// returns; exactly one of EdgeIDs, Pairs, or Predecessor/PredWeight is
// populated, per Kind.
type Result struct {
	Kind Kind

	EdgeIDs []int64

	Pairs []Pair

	Predecessor []int
	PredWeight  []float64
}

// TotalWeight sums the weight of every edge named by r, resolving
// KindEdgeIDs against g.
func (r Result) TotalWeight(g *core.Graph) (float64, error) {
	var total float64
	switch r.Kind {
	case KindEdgeIDs:
		for _, id := range r.EdgeIDs {
			w, err := g.EdgeWeight(id)
			if err != nil {
				return 0, err
			}
			total += w
		}
	case KindPairs:
		for _, p := range r.Pairs {
			total += p.Weight
		}
	case KindPredecessor:
		for i, p := range r.Predecessor {
			if p == -1 {
				continue // root carries no parent edge
			}
			total += r.PredWeight[i]
		}
	}
	return total, nil
}
