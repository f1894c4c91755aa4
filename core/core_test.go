package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstlab/tpmverify/core"
)

// buildTriangle is a 3-vertex triangle fixture: V=3, edges
// (0,1,1.0), (1,2,2.0), (0,2,3.0). MST weight 3.0.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 2.0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, 3.0)
	require.NoError(t, err)

	return g
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph(2)
	_, err := g.AddEdge(0, 0, 1.0)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestAddEdgeRejectsMultiEdge(t *testing.T) {
	g := core.NewGraph(2)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, 2.0)
	assert.ErrorIs(t, err, core.ErrMultiEdge)
}

func TestAddEdgeRejectsOutOfRange(t *testing.T) {
	g := core.NewGraph(2)
	_, err := g.AddEdge(0, 5, 1.0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestEdgesDeterministicOrder(t *testing.T) {
	g := buildTriangle(t)
	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestOutEdgesAndEndpoints(t *testing.T) {
	g := buildTriangle(t)
	out := g.OutEdges(1)
	require.Len(t, out, 2)
	for _, e := range out {
		u, v, err := g.Endpoints(e.ID)
		require.NoError(t, err)
		assert.True(t, u == 1 || v == 1)
	}
}

func TestIsConnected(t *testing.T) {
	g := buildTriangle(t)
	assert.True(t, g.IsConnected())

	disconnected := core.NewGraph(3)
	_, err := disconnected.AddEdge(0, 1, 5.0)
	require.NoError(t, err)
	assert.False(t, disconnected.IsConnected())
}

func TestReferenceMSTWeightTriangle(t *testing.T) {
	g := buildTriangle(t)
	w, err := g.ReferenceMSTWeight()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, w, 0.001)
}

func TestReferenceMSTWeightStar(t *testing.T) {
	// Star graph, V=5, weights 1.1,1.2,1.3,1.4 — MST weight 5.0.
	g := core.NewGraph(5)
	weights := []float64{1.1, 1.2, 1.3, 1.4}
	for i, w := range weights {
		_, err := g.AddEdge(0, i+1, w)
		require.NoError(t, err)
	}
	got, err := g.ReferenceMSTWeight()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 0.001)
}

func TestReferenceMSTWeightDisconnected(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1, 5.0)
	require.NoError(t, err)
	_, err = g.ReferenceMSTWeight()
	assert.ErrorIs(t, err, core.ErrDisconnected)
}

func TestCloneIsIndependent(t *testing.T) {
	g := buildTriangle(t)
	clone := g.Clone()
	assert.Equal(t, g.NumVertices(), clone.NumVertices())
	assert.Equal(t, g.Edges(), clone.Edges())

	_, err := clone.AddEdge(0, 1, 99.0)
	assert.ErrorIs(t, err, core.ErrMultiEdge, "clone should keep the same multi-edge guard state")
	assert.Equal(t, 3, g.NumEdges(), "mutating the clone's pairSeen must not reach the original")
}

// randomConnectedGraph builds a connected graph with n vertices and unique
// weights, seeded deterministically, in the style of prim_kruskal's
// buildMediumGraph test helper.
func randomConnectedGraph(n, extraEdges int, seed int64) *core.Graph {
	g := core.NewGraph(n)
	r := rand.New(rand.NewSource(seed))
	used := make(map[float64]bool)
	uniqueWeight := func() float64 {
		for {
			w := r.Float64()*1000 + 1
			if !used[w] {
				used[w] = true
				return w
			}
		}
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i-1, i, uniqueWeight())
	}
	for added := 0; added < extraEdges; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(u, v, uniqueWeight()); err == nil {
			added++
		}
	}

	return g
}

func TestWeightBetween(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1, 4.5)
	require.NoError(t, err)

	w, ok := g.WeightBetween(0, 1)
	require.True(t, ok)
	assert.Equal(t, 4.5, w)

	w, ok = g.WeightBetween(1, 0)
	require.True(t, ok)
	assert.Equal(t, 4.5, w)

	_, ok = g.WeightBetween(0, 2)
	assert.False(t, ok)
}

func TestDisjointSetUnionFind(t *testing.T) {
	d := core.NewDisjointSet(5)
	assert.False(t, d.Connected(0, 1))
	assert.True(t, d.Union(0, 1))
	assert.False(t, d.Union(0, 1), "second union of the same pair reports no change")
	assert.True(t, d.Connected(0, 1))
	assert.True(t, d.Union(1, 2))
	assert.True(t, d.Connected(0, 2))
	assert.False(t, d.Connected(0, 3))
}
