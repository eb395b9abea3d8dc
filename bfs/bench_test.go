package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/Naxaes/Algorithms/bfs"
	"github.com/Naxaes/Algorithms/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(b, N+1)
	V := N + 1
	E := N

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1
	edges := make([][2]int, 0, nodeCount-1)
	for i := 1; i < nodeCount; i++ {
		edges = append(edges, [2]int{(i - 1) / 2, i})
	}
	g := mustGraph(b, nodeCount, edges, core.WithDirected(true))

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse runs BFS on a random sparse graph with fixed seed.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const n, m = 2000, 8000
	rng := rand.New(rand.NewSource(42))
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := mustGraph(b, n, edges)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
