// File: build.go
// Role: Build — Euler tour + two-level RMQ construction.
package lca

import (
	"math/bits"

	"github.com/mstlab/tpmverify/fbt"
)

// Oracle answers LCA/depth/parent queries over the tree it was built on.
type Oracle struct {
	tree *fbt.Tree
	root int

	tour       []int // euler tour of node IDs, length 2*numNodes-1 (or 1 for a single node)
	height     []int // height[v] = depth of v
	firstVisit []int // index of v's first occurrence in tour

	blockSize int
	blockCnt  int
	// sparseTable[i][k] = tour-index of the minimum-height entry across
	// blocks [i, i+2^k).
	sparseTable [][]int
	blockMask   []int // per block, the (blockSize-1)-bit +/- signature

	// blockArgmin[mask][l][r] = in-block offset of the min-height entry in
	// [l, r], computed once per signature actually seen.
	blockArgmin map[int][][]int
}

// Build constructs an Oracle for tree, rooted at root.
//
// Complexity: O((n+m) log n), n = tree.NumNodes, m = len(euler tour).
func Build(tree *fbt.Tree, root int) *Oracle {
	o := &Oracle{tree: tree, root: root}
	o.buildEulerTour()
	o.buildSparseTable()
	o.buildBlockArgmin()

	return o
}

func (o *Oracle) buildEulerTour() {
	n := o.tree.NumNodes
	o.height = make([]int, n)
	o.firstVisit = make([]int, n)
	for i := range o.firstVisit {
		o.firstVisit[i] = -1
	}

	if n == 1 {
		o.tour = []int{o.root}
		o.firstVisit[o.root] = 0
		return
	}

	o.tour = make([]int, 0, 2*n-1)

	type frame struct {
		node     int
		childIdx int
	}
	stack := make([]frame, 0, n)

	o.tour = append(o.tour, o.root)
	o.firstVisit[o.root] = 0
	stack = append(stack, frame{node: o.root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := o.tree.Children[top.node]
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++
			o.height[child] = o.height[top.node] + 1
			o.tour = append(o.tour, child)
			o.firstVisit[child] = len(o.tour) - 1
			stack = append(stack, frame{node: child})
		} else {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				o.tour = append(o.tour, stack[len(stack)-1].node)
			}
		}
	}
}

// minByHeight returns whichever of tour positions a, b has smaller height;
// ties are broken arbitrarily since both occurrences name a valid witness
// for the minimum.
func (o *Oracle) minByHeight(a, b int) int {
	if o.height[o.tour[a]] < o.height[o.tour[b]] {
		return a
	}
	return b
}

func log2Floor(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x)) - 1
}

func (o *Oracle) buildSparseTable() {
	m := len(o.tour)
	o.blockSize = log2Floor(m) / 2
	if o.blockSize < 1 {
		o.blockSize = 1
	}
	o.blockCnt = (m + o.blockSize - 1) / o.blockSize

	levels := log2Floor(o.blockCnt) + 1
	o.sparseTable = make([][]int, o.blockCnt)
	for i := range o.sparseTable {
		o.sparseTable[i] = make([]int, levels)
	}
	o.blockMask = make([]int, o.blockCnt)

	blockIdx := 0
	curBlock := 0
	for i := 0; i < m; i, blockIdx = i+1, blockIdx+1 {
		if blockIdx == o.blockSize {
			blockIdx = 0
			curBlock++
		}
		if blockIdx == 0 || o.minByHeight(i, o.sparseTable[curBlock][0]) == i {
			o.sparseTable[curBlock][0] = i
		}
		if blockIdx > 0 && o.minByHeight(i-1, i) == i-1 {
			o.blockMask[curBlock] |= 1 << uint(blockIdx-1)
		}
	}

	for logLen := 1; logLen < levels; logLen++ {
		prevLen := logLen - 1
		for i := 0; i < o.blockCnt; i++ {
			next := i + (1 << uint(prevLen))
			cur := o.sparseTable[i][prevLen]
			if next >= o.blockCnt {
				o.sparseTable[i][logLen] = cur
			} else {
				o.sparseTable[i][logLen] = o.minByHeight(cur, o.sparseTable[next][prevLen])
			}
		}
	}
}

func (o *Oracle) buildBlockArgmin() {
	o.blockArgmin = make(map[int][][]int)
	for block := 0; block < o.blockCnt; block++ {
		mask := o.blockMask[block]
		if _, ok := o.blockArgmin[mask]; ok {
			continue
		}
		offset := block * o.blockSize
		table := make([][]int, o.blockSize)
		for l := 0; l < o.blockSize; l++ {
			table[l] = make([]int, o.blockSize)
			table[l][l] = l
			for r := l + 1; r < o.blockSize; r++ {
				table[l][r] = table[l][r-1]
				curMinPos := offset + table[l][r]
				origPos := r + offset
				if origPos < len(o.tour) {
					if o.minByHeight(curMinPos, origPos) == origPos {
						table[l][r] = r
					}
				}
			}
		}
		o.blockArgmin[mask] = table
	}
}
