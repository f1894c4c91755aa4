// File: boruvka.go
// Role: Boruvka — thin Result-shaped wrapper over package boruvka's driver.
package mst

import (
	"github.com/mstlab/tpmverify/boruvka"
	"github.com/mstlab/tpmverify/core"
)

// Boruvka computes an MST by iterating boruvka.Step with back-mapping
// until one vertex remains, returning the concatenated chosen-edge pairs.
func Boruvka(g *core.Graph) (Result, error) {
	pairs, err := boruvka.MST(g)
	if err != nil {
		return Result{}, err
	}

	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		out[i] = Pair{U: p.U, V: p.V, Weight: p.Weight}
	}

	return Result{Kind: KindPairs, Pairs: out}, nil
}
