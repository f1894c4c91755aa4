package lca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstlab/tpmverify/core"
	"github.com/mstlab/tpmverify/fbt"
	"github.com/mstlab/tpmverify/lca"
)

// literalSampleTree hand-builds a 7-vertex sample tree (V=7, edges
// (0,1,1.5),(0,2,2.3),(1,3,0.9),(1,4,1.2),(2,5,3.1),(2,6,2.8)) as a
// *fbt.Tree directly, rooted at vertex 0, rather than deriving it via
// fbt.Build: a single Borůvka-FBT round happens to select every edge of
// this small tree at once, collapsing it to a flat one-level FBT, which
// would not exercise the scenario's intended two-level LCA structure.
func literalSampleTree() *fbt.Tree {
	return &fbt.Tree{
		NumNodes:  7,
		NumLeaves: 4,
		Root:      0,
		Parent:    []int{-1, 0, 0, 1, 1, 2, 2},
		ParentWeight: []float64{
			math.Inf(-1), 1.5, 2.3, 0.9, 1.2, 3.1, 2.8,
		},
		Children: [][]int{
			{1, 2},
			{3, 4},
			{5, 6},
			{},
			{},
			{},
			{},
		},
	}
}

func sampleTree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(7)
	edges := []struct {
		u, v int
		w    float64
	}{
		{0, 1, 1.5}, {0, 2, 2.3}, {1, 3, 0.9}, {1, 4, 1.2}, {2, 5, 3.1}, {2, 6, 2.8},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// naiveLCA computes the LCA of u, v by walking both root-paths via
// parent/depth — used only as a test oracle, never shipped.
func naiveLCA(o *lca.Oracle, u, v int) int {
	du, dv := o.Depth(u), o.Depth(v)
	for du > dv {
		u = o.Parent(u)
		du--
	}
	for dv > du {
		v = o.Parent(v)
		dv--
	}
	for u != v {
		u = o.Parent(u)
		v = o.Parent(v)
	}
	return u
}

func TestLCAMatchesNaiveOnSampleTree(t *testing.T) {
	g := sampleTree(t)
	tr, leafOf, root, err := fbt.Build(g)
	require.NoError(t, err)
	o := lca.Build(tr, root)

	for u := 0; u < tr.NumNodes; u++ {
		for v := 0; v < tr.NumNodes; v++ {
			got := o.LCA(u, v)
			want := naiveLCA(o, u, v)
			assert.Equal(t, want, got, "LCA(%d,%d)", u, v)
		}
	}
	_ = leafOf
}

func TestDepthLCAIsAtMostMinDepth(t *testing.T) {
	g := sampleTree(t)
	tr, _, root, err := fbt.Build(g)
	require.NoError(t, err)
	o := lca.Build(tr, root)

	for u := 0; u < tr.NumNodes; u++ {
		for v := 0; v < tr.NumNodes; v++ {
			a := o.LCA(u, v)
			min := o.Depth(u)
			if o.Depth(v) < min {
				min = o.Depth(v)
			}
			assert.LessOrEqual(t, o.Depth(a), min)
		}
	}
}

func TestParentSentinelAndAdjacency(t *testing.T) {
	g := sampleTree(t)
	tr, _, root, err := fbt.Build(g)
	require.NoError(t, err)
	o := lca.Build(tr, root)

	assert.Equal(t, -1, o.Parent(root))
	for v := 0; v < tr.NumNodes; v++ {
		if v == root {
			continue
		}
		p := o.Parent(v)
		assert.Contains(t, tr.Children[p], v)
	}
}

func TestLCAOverSampleTree(t *testing.T) {
	// LCA(3,6)=0, LCA(3,4)=1, LCA(5,6)=2.
	tr := literalSampleTree()
	o := lca.Build(tr, tr.Root)

	assert.Equal(t, 0, o.LCA(3, 6))
	assert.Equal(t, 1, o.LCA(3, 4))
	assert.Equal(t, 2, o.LCA(5, 6))
}

// randomTree builds a connected acyclic graph (a random labeled tree) on n
// vertices with unique weights, seeded deterministically.
func randomTree(n int, seed int64) *core.Graph {
	g := core.NewGraph(n)
	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		parent := r.Intn(i)
		w := float64(i) + r.Float64()
		_, _ = g.AddEdge(parent, i, w)
	}
	return g
}

func TestLCAMatchesNaiveOnRandomTrees(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := randomTree(40, seed)
		tr, _, root, err := fbt.Build(g)
		require.NoError(t, err)
		o := lca.Build(tr, root)

		r := rand.New(rand.NewSource(seed + 100))
		for i := 0; i < 200; i++ {
			u := r.Intn(tr.NumNodes)
			v := r.Intn(tr.NumNodes)
			assert.Equal(t, naiveLCA(o, u, v), o.LCA(u, v))
		}
	}
}
