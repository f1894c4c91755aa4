// File: mst.go
// Role: MST — the classical Borůvka driver: iterate Step
//       with back-mapping until one vertex remains.
package boruvka

import (
	"errors"

	"github.com/mstlab/tpmverify/core"
)

// ErrEmptyGraph indicates MST was called on a graph with zero vertices.
var ErrEmptyGraph = errors.New("boruvka: empty graph")

// Pair is an unordered endpoint pair chosen by the Borůvka driver.
type Pair struct {
	U, V   int
	Weight float64
}

// MST runs repeated Borůvka contractions on g until a single vertex
// remains, concatenating every step's chosen edges.
//
// Complexity: O(E log V) — each of O(log V) rounds costs O(E).
func MST(g *core.Graph) ([]Pair, error) {
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.NumVertices() == 1 {
		return nil, nil
	}

	current := g
	var back BackMap // nil means "current is the original graph"
	var result []Pair

	for current.NumVertices() > 1 {
		chosen, h, newBack, err := Step(current, back)
		if err != nil {
			return nil, err
		}
		for _, e := range chosen {
			result = append(result, Pair{U: e.From, V: e.To, Weight: e.Weight})
		}
		if h.NumVertices() == current.NumVertices() {
			// No component merged this round: the remaining vertices are
			// in separate components with no edges left to contract
			// between them (a disconnected input). Further rounds would
			// repeat this step forever.
			break
		}
		current = h
		back = newBack
	}

	return result, nil
}
