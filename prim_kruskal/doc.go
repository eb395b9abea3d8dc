// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: Stable-sort all edges by weight, then iterate from smallest to largest, merging
//     components in a unionfind.PathCompressed forest and skipping edges whose endpoints are
//     already connected. Stop once |V|−1 edges have been added.
//
//   - Complexity: O(E log E + α(V)*E) time, O(V + E) space.
//
//   - Determinism: graph.Edges() returns edges in insertion order and the sort is stable.
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, int64, error)
//
//   - Strategy: Grow a single tree starting from root. Candidate arcs wait in a heap.MaxHeap
//     whose comparison is reversed, so the lightest arc is always on top.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Error Conditions
//
//	- ErrInvalidGraph
//	    - Graph is nil, OR
//	    - graph.Directed() == true (MST requires undirected), OR
//	    - !graph.Weighted() (MST requires a weighted graph).
//
//	- core.ErrVertexNotFound (Prim only)
//	    - root is outside [0, VertexCount()).
//
//	- ErrDisconnected
//	    - |V| == 0 (empty graph), OR
//	    - |V| > 1 but the graph is not fully connected.
//
//	- ErrUnknownMethod (Compute only)
//	    - MSTOptions.Method is neither MethodPrim nor MethodKruskal.
//
// Self-loops are ignored by both algorithms; of several parallel edges only the
// lightest can enter the tree.
package prim_kruskal
