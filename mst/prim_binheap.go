// File: prim_binheap.go
// Role: PrimBinaryHeap — container/heap-backed min-priority-queue Prim.
// Grounded on prim_kruskal.Prim/edgePQ, generalized to the
// dense-integer vertex model and returning mst.KindPredecessor.
package mst

import (
	"container/heap"

	"github.com/mstlab/tpmverify/core"
)

// PrimBinaryHeap grows an MST outward from root using a binary-heap
// min-priority-queue keyed by the cheapest edge connecting an in-tree
// vertex to one outside it.
//
// Complexity: O(E log V).
func PrimBinaryHeap(g *core.Graph, root int) (Result, error) {
	n := g.NumVertices()
	pred := make([]int, n)
	predWeight := make([]float64, n)
	for i := range pred {
		pred[i] = -1
	}
	if n <= 1 {
		return Result{Kind: KindPredecessor, Predecessor: pred, PredWeight: predWeight}, nil
	}

	visited := make([]bool, n)
	visited[root] = true
	visitedCount := 1

	pq := &edgeHeap{}
	heap.Init(pq)
	for _, e := range g.OutEdges(root) {
		heap.Push(pq, heapEdge{to: other(e, root), weight: e.Weight, from: root})
	}

	for pq.Len() > 0 && visitedCount < n {
		top := heap.Pop(pq).(heapEdge)
		if visited[top.to] {
			continue
		}
		visited[top.to] = true
		visitedCount++
		pred[top.to] = top.from
		predWeight[top.to] = top.weight

		for _, e := range g.OutEdges(top.to) {
			nb := other(e, top.to)
			if !visited[nb] {
				heap.Push(pq, heapEdge{to: nb, weight: e.Weight, from: top.to})
			}
		}
	}

	if visitedCount < n {
		return Result{}, ErrAlgorithmFailure
	}

	return Result{Kind: KindPredecessor, Predecessor: pred, PredWeight: predWeight}, nil
}

func other(e core.Edge, v int) int {
	if e.From == v {
		return e.To
	}
	return e.From
}

// heapEdge is a candidate connector from an in-tree vertex (from) to an
// out-of-tree vertex (to), ordered by weight.
type heapEdge struct {
	to, from int
	weight   float64
}

// edgeHeap implements heap.Interface over heapEdge, ordered ascending by
// weight.
type edgeHeap []heapEdge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(heapEdge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
