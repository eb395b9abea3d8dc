package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/prim_kruskal"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// This graph’s MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
// A chain 0—1—…—(n-1) with weights in [1..10] guarantees connectivity; the rest are random
// edges with weights in [1..100]. The generator is seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithWeighted())
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i, int64(1+r.Intn(10))))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // loops are rejected by the graph
		}
		require.NoError(t, g.AddEdge(u, v, int64(1+r.Intn(100))))
		extra--
	}

	return g
}

// edgeSet normalizes undirected MST edges to "min-max" keys.
func edgeSet(mst []core.Edge) map[string]bool {
	names := make(map[string]bool, len(mst))
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return names
}

// TestValidation_EmptyOrDisconnected verifies that Prim and Kruskal return ErrDisconnected
// when the graph has no vertices or a spanning tree is impossible.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	g, err := core.NewGraph(0, core.WithWeighted())
	require.NoError(t, err)

	edgesP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)

	edgesK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)

	// Two isolated vertices.
	g2, err := core.NewGraph(2, core.WithWeighted())
	require.NoError(t, err)
	_, _, errK = prim_kruskal.Kruskal(g2)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
	_, _, errP = prim_kruskal.Prim(g2, 0)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

// TestValidation_UnweightedOrDirected verifies that both algorithms reject unweighted or directed graphs.
func TestValidation_UnweightedOrDirected(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	gUnweighted, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _, err = prim_kruskal.Kruskal(gUnweighted)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(gUnweighted, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	gDirected, err := core.NewGraph(2, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, err)
	_, _, err = prim_kruskal.Kruskal(gDirected)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(gDirected, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestValidation_MissingRoot verifies that Prim rejects a root outside the graph.
func TestValidation_MissingRoot(t *testing.T) {
	_, _, err := prim_kruskal.Prim(buildTriangle(t), 3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = prim_kruskal.Prim(buildTriangle(t), -1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTriangle(t *testing.T) {
	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			opts := prim_kruskal.DefaultOptions()
			prim_kruskal.WithMethod(method)(&opts)

			mst, total, err := prim_kruskal.Compute(buildTriangle(t), opts)
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.Len(t, mst, 2)
			names := edgeSet(mst)
			assert.True(t, names["0-1"], "edge 0-1 must be in MST")
			assert.True(t, names["1-2"], "edge 1-2 must be in MST")
		})
	}
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, _, err := prim_kruskal.Compute(buildTriangle(t), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestWithRoot(t *testing.T) {
	opts := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)
	prim_kruskal.WithMethod(prim_kruskal.MethodPrim)(&opts)
	prim_kruskal.WithRoot(2)(&opts)

	mst, total, err := prim_kruskal.Compute(buildTriangle(t), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 2, mst[0].From, "Prim grows from the root")
}

// TestSingleVertexGraph verifies behavior when the graph has exactly one vertex.
func TestSingleVertexGraph(t *testing.T) {
	g, err := core.NewGraph(1, core.WithWeighted())
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestParallelEdgesAndLoops verifies that the lighter of two parallel edges is
// chosen and that self-loops never enter the tree.
func TestParallelEdgesAndLoops(t *testing.T) {
	g, err := core.NewGraph(2, core.WithWeighted(), core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, -10))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 1))

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Equal(t, int64(1), totalK)
	assert.Len(t, mstK, 1)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Equal(t, int64(1), totalP)
	assert.Len(t, mstP, 1)
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger randomly generated graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(t, 10, 20)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, mstK, g.VertexCount()-1)

	for root := 0; root < g.VertexCount(); root++ {
		mstP, totalP, errP := prim_kruskal.Prim(g, root)
		require.NoError(t, errP)
		assert.Len(t, mstP, g.VertexCount()-1)
		assert.Equal(t, totalK, totalP, "root %d", root)
	}
}
