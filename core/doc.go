// Package core provides the integer-indexed Graph that the traversal,
// spanning-tree and shortest-path packages operate on.
//
// Vertices are the integers 0..VertexCount()-1. Each vertex owns an
// adjacency list stored in a dynarray.Array[Edge], so neighbor lists grow by
// capacity doubling exactly like any other growable buffer in this module.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only the from→to arc.
//	    Undirected graphs also store the mirrored to→from arc.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	NewGraph(n, opts...) (*Graph, error)          // O(n)
//	FromAdjacency(lists, opts...) (*Graph, error) // O(V+E), lists[i] are arcs i→j
//	AddEdge(from, to int, weight int64) error     // amortized O(1)
//	HasVertex(v int) bool                         // O(1)
//	HasEdge(from, to int) bool                    // O(deg(from))
//	Neighbors(v int) ([]Edge, error)              // O(deg(v)), insertion order
//	NeighborIDs(v int) ([]int, error)             // O(deg(v)), insertion order
//	Edges() []Edge                                // O(E), each edge once
//	VertexCount(), EdgeCount(), ArcCount()        // O(1)
//
// Errors:
//
//	ErrInvalidVertexCount – negative vertex count
//	ErrVertexNotFound     – vertex outside [0, VertexCount())
//	ErrBadWeight          – non-zero weight on an unweighted graph
//	ErrLoopNotAllowed     – self-loop when loops are disabled
//
// Graph is not safe for concurrent mutation.
package core
