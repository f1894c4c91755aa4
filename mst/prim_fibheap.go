// File: prim_fibheap.go
// Role: PrimFibonacciHeap — identical logic to PrimBinaryHeap over the
// hand-written fibHeap, using decrease-key instead of re-pushing stale
// entries.
package mst

import (
	"math"

	"github.com/mstlab/tpmverify/core"
)

// PrimFibonacciHeap grows an MST outward from root using a Fibonacci-heap
// min-priority-queue with decrease-key.
//
// Complexity: O(E + V log V) amortized.
func PrimFibonacciHeap(g *core.Graph, root int) (Result, error) {
	n := g.NumVertices()
	pred := make([]int, n)
	predWeight := make([]float64, n)
	for i := range pred {
		pred[i] = -1
	}
	if n <= 1 {
		return Result{Kind: KindPredecessor, Predecessor: pred, PredWeight: predWeight}, nil
	}

	inHeap := make([]bool, n)
	h := newFibHeap(n)
	for v := 0; v < n; v++ {
		key := math.Inf(1)
		if v == root {
			key = 0
		}
		h.insert(v, key, -1)
		inHeap[v] = true
	}

	for !h.empty() {
		top := h.extractMin()
		inHeap[top.vertex] = false
		if top.vertex != root {
			pred[top.vertex] = top.from
			predWeight[top.vertex] = top.key
		}

		for _, e := range g.OutEdges(top.vertex) {
			nb := other(e, top.vertex)
			if inHeap[nb] && e.Weight < h.nodes[nb].key {
				h.decreaseKey(nb, e.Weight, top.vertex)
			}
		}
	}

	for v, p := range pred {
		if v != root && p == -1 {
			return Result{}, ErrAlgorithmFailure
		}
	}

	return Result{Kind: KindPredecessor, Predecessor: pred, PredWeight: predWeight}, nil
}
