// File: fibheap.go
// Role: a hand-written Fibonacci heap backing PrimFibonacciHeap, following
// the classical CLRS amortized-analysis construction: lazy binomial-tree
// consolidation on extract-min, mark-and-cascading-cut on decrease-key.
package mst

// fibNode is one heap element: a candidate connecting edge for a vertex,
// keyed by its weight.
type fibNode struct {
	vertex int
	key    float64
	from   int

	degree int
	mark   bool

	parent, child *fibNode
	left, right   *fibNode
}

// fibHeap is a Fibonacci heap specialized for Prim: exactly one node per
// vertex, addressable by vertex ID so decrease-key needs no search.
type fibHeap struct {
	min   *fibNode
	count int
	nodes []*fibNode
}

func newFibHeap(n int) *fibHeap {
	return &fibHeap{nodes: make([]*fibNode, n)}
}

func (h *fibHeap) empty() bool { return h.count == 0 }

func (h *fibHeap) insert(vertex int, key float64, from int) {
	node := &fibNode{vertex: vertex, key: key, from: from}
	node.left, node.right = node, node
	h.mergeIntoRootList(node)
	if h.min == nil || node.key < h.min.key {
		h.min = node
	}
	h.count++
	h.nodes[vertex] = node
}

// mergeIntoRootList splices the singleton node into the root list.
func (h *fibHeap) mergeIntoRootList(node *fibNode) {
	if h.min == nil {
		h.min = node
		return
	}
	node.left = h.min
	node.right = h.min.right
	h.min.right.left = node
	h.min.right = node
}

func collectCircular(start *fibNode) []*fibNode {
	if start == nil {
		return nil
	}
	out := []*fibNode{start}
	for cur := start.right; cur != start; cur = cur.right {
		out = append(out, cur)
	}
	return out
}

func (h *fibHeap) extractMin() *fibNode {
	z := h.min
	if z == nil {
		return nil
	}

	roots := collectCircular(h.min)
	newRoots := make([]*fibNode, 0, len(roots)+z.degree)
	for _, r := range roots {
		if r != z {
			newRoots = append(newRoots, r)
		}
	}
	for _, c := range collectCircular(z.child) {
		c.parent = nil
		c.mark = false
		newRoots = append(newRoots, c)
	}

	h.min = nil
	for _, n := range newRoots {
		n.left, n.right = n, n
		h.mergeIntoRootList(n)
	}
	h.count--
	h.nodes[z.vertex] = nil
	if h.min != nil {
		h.consolidate()
	}

	z.left, z.right, z.child, z.parent = nil, nil, nil, nil
	return z
}

func (h *fibHeap) consolidate() {
	const maxDegree = 64 // safely exceeds log_phi(n) for any n a Go slice can index
	degreeTable := make([]*fibNode, maxDegree)

	for _, x := range collectCircular(h.min) {
		d := x.degree
		for degreeTable[d] != nil {
			y := degreeTable[d]
			if y == x {
				break
			}
			if y.key < x.key {
				x, y = y, x
			}
			h.link(y, x)
			degreeTable[d] = nil
			d++
		}
		degreeTable[d] = x
	}

	h.min = nil
	for _, node := range degreeTable {
		if node == nil {
			continue
		}
		node.left, node.right = node, node
		h.mergeIntoRootList(node)
		if h.min == nil || node.key < h.min.key {
			h.min = node
		}
	}
}

// link makes y a child of x; y must currently be a root.
func (h *fibHeap) link(y, x *fibNode) {
	y.parent = x
	y.mark = false
	if x.child == nil {
		x.child = y
		y.left, y.right = y, y
	} else {
		y.left = x.child
		y.right = x.child.right
		x.child.right.left = y
		x.child.right = y
	}
	x.degree++
}

func (h *fibHeap) decreaseKey(vertex int, newKey float64, newFrom int) {
	node := h.nodes[vertex]
	if node == nil || newKey >= node.key {
		return
	}
	node.key = newKey
	node.from = newFrom

	parent := node.parent
	if parent != nil && node.key < parent.key {
		h.cut(node, parent)
		h.cascadingCut(parent)
	}
	if h.min == nil || node.key < h.min.key {
		h.min = node
	}
}

func (h *fibHeap) cut(x, y *fibNode) {
	if x.right == x {
		y.child = nil
	} else {
		x.left.right = x.right
		x.right.left = x.left
		if y.child == x {
			y.child = x.right
		}
	}
	y.degree--

	x.left, x.right = x, x
	x.parent = nil
	x.mark = false
	h.mergeIntoRootList(x)
}

func (h *fibHeap) cascadingCut(y *fibNode) {
	z := y.parent
	if z == nil {
		return
	}
	if !y.mark {
		y.mark = true
		return
	}
	h.cut(y, z)
	h.cascadingCut(z)
}
