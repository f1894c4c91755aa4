// File: tpm.go
// Role: Answer — the query-answering driver.
package tpm

import (
	"math/bits"

	"github.com/mstlab/tpmverify/fbt"
	"github.com/mstlab/tpmverify/lca"
)

// Query is a bottom-up tree-path-maximum query: Ancestor must be a proper
// strict ancestor of Leaf.
type Query struct {
	Leaf     int
	Ancestor int
}

// Answer returns, for each query, the vertex whose parent-edge carries the
// maximum weight along the open path from Leaf up to (but not including)
// Ancestor.
//
// Complexity: O(n + len(queries)) after O(2^d) median-table preprocessing,
// d = the tree's depth.
func Answer(tree *fbt.Tree, o *lca.Oracle, queries []Query) []int {
	if len(queries) == 0 {
		return nil
	}

	n := tree.NumNodes
	// All leaves of a fully-branching tree share one depth (fbt.Build's
	// invariant), so any query's leaf depth names the tree's depth.
	depth := o.Depth(queries[0].Leaf)

	firstQuery := make([]int, n)
	for i := range firstQuery {
		firstQuery[i] = -1
	}
	nextQuery := make([]int, len(queries))
	querySets := make([]uint64, n)
	answers := make([]int, len(queries))
	rows := make([][]int, depth+1)

	for i, q := range queries {
		if firstQuery[q.Leaf] == -1 {
			rows[depth] = append(rows[depth], q.Leaf)
		}
		nextQuery[i] = firstQuery[q.Leaf]
		firstQuery[q.Leaf] = i
		querySets[q.Leaf] |= uint64(1) << uint(o.Depth(q.Ancestor))
	}

	propagateQuerySetsUp(o, rows, querySets, depth)
	medianTable := buildMedianTable(depth)

	visitStack := make([]int, depth+1)
	weight := func(v int) float64 { return tree.WeightToParent(v) }

	type frame struct {
		node     int
		s        uint64
		childIdx int
	}
	stack := make([]frame, 0, n)
	stack = append(stack, frame{node: tree.Root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.childIdx == 0 {
			v := top.node
			d := o.Depth(v)
			visitStack[d] = v

			k := binarySearch(medianTable, visitStack, weight, weight(v), down(querySets[v], top.s))
			sPrime := down(querySets[v], (top.s&((uint64(1)<<uint(k+1))-1))|(uint64(1)<<uint(d)))
			top.s = sPrime

			for i := firstQuery[v]; i != -1; i = nextQuery[i] {
				ancDepth := o.Depth(queries[i].Ancestor)
				tail := sPrime &^ ((uint64(1) << uint(ancDepth+1)) - 1)
				lsbPos := bits.TrailingZeros64(tail)
				answers[i] = visitStack[lsbPos]
			}
		}

		children := tree.Children[top.node]
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++
			stack = append(stack, frame{node: child, s: top.s})
		} else {
			stack = stack[:len(stack)-1]
		}
	}

	return answers
}

// binarySearch returns max({j in S | weight(visitStack[j]) > w} union {0}).
func binarySearch(medianTable []int, visitStack []int, weight func(int) float64, w float64, s uint64) int {
	if s == 0 {
		return 0
	}
	j := medianTable[s]
	for s != uint64(1)<<uint(j) {
		if weight(visitStack[j]) > w {
			s &= ^((uint64(1) << uint(j)) - 1)
		} else {
			s &= (uint64(1) << uint(j)) - 1
		}
		j = medianTable[s]
	}
	if weight(visitStack[j]) > w {
		return j
	}
	return 0
}

// propagateQuerySetsUp pushes each leaf's query_sets bitmask up the tree,
// one depth at a time, masking off the parent's own depth bit as it goes.
func propagateQuerySetsUp(o *lca.Oracle, rows [][]int, querySets []uint64, depth int) {
	found := make([]int, len(querySets))
	for i := range found {
		found[i] = -1
	}

	for curDepth := depth; curDepth > 0; curDepth-- {
		parentDepth := curDepth - 1
		parentMask := ^(uint64(1) << uint(parentDepth))
		for _, u := range rows[curDepth] {
			parent := o.Parent(u)
			querySets[parent] |= querySets[u] & parentMask
			if found[parent] != curDepth {
				rows[parentDepth] = append(rows[parentDepth], parent)
				found[parent] = curDepth
			}
		}
	}
}
