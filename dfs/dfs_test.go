package dfs_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/dfs"
)

// demoAdjacency is the ten-vertex adjacency list used by the command-line demo.
// Vertex 6 carries a self-loop.
var demoAdjacency = [][]int{
	/* 0 */ {1, 7, 4},
	/* 1 */ {0},
	/* 2 */ {4, 8, 5},
	/* 3 */ {5},
	/* 4 */ {0, 2, 7, 8},
	/* 5 */ {2, 8, 3, 6, 9},
	/* 6 */ {6},
	/* 7 */ {0, 4},
	/* 8 */ {4, 2, 5},
	/* 9 */ {5},
}

func demoGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(demoAdjacency, core.WithDirected(true), core.WithLoops())
	require.NoError(t, err)

	return g
}

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithDirected(true))
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 0))
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1),
// rooted at 0 with children 2i+1 and 2i+2.
func buildBinaryTree(t testing.TB, depth int) *core.Graph {
	t.Helper()
	n := (1 << depth) - 1
	g, err := core.NewGraph(n, core.WithDirected(true))
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge((i-1)/2, i, 0))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)

	res, err := dfs.DFS(g, 2)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(g, -1)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_DemoGraph(t *testing.T) {
	g := demoGraph(t)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 7, 4, 2, 8, 5, 3, 6, 9}, res.Path)
	assert.Equal(t, []int{1, 3, 6, 9, 5, 8, 2, 4, 7, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 3, 6, 2, 5, 6, 1, 4, 6}, res.Depth)
	assert.Equal(t, []int{-1, 0, 4, 5, 7, 8, 5, 0, 2, 5}, res.Parent)

	path, err := res.PathTo(9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 7, 4, 2, 8, 5, 9}, path)
}

func TestDFS_SingleVertex_SelfLoop(t *testing.T) {
	g, err := core.NewGraph(1, core.WithDirected(true), core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 0))

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	// Self-loop should not create additional entries
	assert.Equal(t, []int{0}, res.Path)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, -1, res.Parent[0], "start vertex should have no parent")
}

func TestDFS_Undirected(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))

	res, err := dfs.DFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, res.Path)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
}

func TestDFS_Disconnected(t *testing.T) {
	g := buildChain(t, 3)

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	// Only reachable vertices
	assert.Equal(t, []int{2, 1}, res.Order)
	assert.False(t, res.Visited[0], "upstream vertex should not be visited")
	assert.Equal(t, -1, res.Depth[0])

	_, err = res.PathTo(0)
	assert.ErrorIs(t, err, dfs.ErrNotReachable)
	_, err = res.PathTo(42)
	assert.ErrorIs(t, err, dfs.ErrNotReachable)
}

func TestDFS_FullTraversal(t *testing.T) {
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))

	res, err := dfs.DFS(g, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, []int{1, 0, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 0, 1}, res.Depth)
	assert.Equal(t, []int{-1, 0, -1, 2}, res.Parent)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, path)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 3)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.False(t, res.Visited[2])
	assert.Equal(t, -1, res.Parent[2], "undiscovered vertex keeps no parent")

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool {
		return v != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnExitError(t *testing.T) {
	g := buildChain(t, 2)

	res, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error {
		if v == 1 {
			return errors.New("halt at 1 on exit")
		}

		return nil
	}))
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_OnVisitOnExitHooks(t *testing.T) {
	g := buildBinaryTree(t, 3) // 7 nodes
	var pre, post []int

	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error {
			pre = append(pre, v)
			if v == 3 {
				return errors.New("stop at 3")
			}

			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			post = append(post, v)

			return nil
		}),
	)
	assert.NotNil(t, res)
	assert.ErrorContains(t, err, "OnVisit hook for 3")
	assert.Equal(t, []int{0, 1, 3}, pre)
	// Since the error occurred in OnVisit, post-order remains empty
	assert.Empty(t, post)
	assert.Empty(t, res.Order)
}

func TestDFS_CancellationImmediate(t *testing.T) {
	g := buildChain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	res, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no nodes should finish when canceled immediately")
}

func TestDFS_BinaryTree_TraversalAndVisited(t *testing.T) {
	const depth = 4 // 15 nodes
	g := buildBinaryTree(t, depth)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	for v, seen := range res.Visited {
		assert.True(t, seen, "vertex %d must be visited", v)
	}
	// Post order: size 15, root should be last
	assert.Len(t, res.Order, (1<<depth)-1)
	assert.Equal(t, 0, res.Order[len(res.Order)-1], "root must finish last")
	assert.Equal(t, depth-1, res.Depth[14])
}

func TestIterative_Errors(t *testing.T) {
	_, err := dfs.Iterative(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildChain(t, 2)
	_, err = dfs.Iterative(g, 5)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestIterative_DemoGraph(t *testing.T) {
	path, err := dfs.Iterative(demoGraph(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 7, 4, 2, 8, 5, 3, 6, 9}, path)
}

func TestIterative_DeepChain(t *testing.T) {
	const n = 5000
	path, err := dfs.Iterative(buildChain(t, n), 0)
	require.NoError(t, err)
	require.Len(t, path, n)
	assert.Equal(t, n-1, path[n-1])
}

func TestIterative_MatchesRecursive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(30)
		directed := trial%2 == 0
		g, err := core.NewGraph(n, core.WithDirected(directed), core.WithLoops())
		require.NoError(t, err)
		for e := rng.Intn(3 * n); e > 0; e-- {
			require.NoError(t, g.AddEdge(rng.Intn(n), rng.Intn(n), 0))
		}
		start := rng.Intn(n)

		res, err := dfs.DFS(g, start)
		require.NoError(t, err)
		path, err := dfs.Iterative(g, start)
		require.NoError(t, err)
		assert.Equal(t, res.Path, path, "trial %d", trial)
	}
}
