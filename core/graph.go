package core

import (
	"fmt"

	"github.com/Naxaes/Algorithms/dynarray"
)

// NewGraph creates a Graph with n isolated vertices.
// By default, Graph is undirected, unweighted, and rejects self-loops.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, n)
	}

	g := &Graph{
		adjacency: make([]*dynarray.Array[Edge], n),
		edges:     dynarray.FromSlice[Edge](nil),
	}
	for i := range g.adjacency {
		// adjacencyCapacity > 0, so New cannot fail here
		g.adjacency[i], _ = dynarray.New[Edge](adjacencyCapacity)
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromAdjacency builds a Graph with len(lists) vertices in which lists[i]
// names the heads of the arcs leaving i. Every entry becomes one AddEdge
// call with weight 0; pass WithDirected(true) to keep the arcs one-way.
func FromAdjacency(lists [][]int, opts ...GraphOption) (*Graph, error) {
	g, err := NewGraph(len(lists), opts...)
	if err != nil {
		return nil, err
	}
	for from, heads := range lists {
		for _, to := range heads {
			if err = g.AddEdge(from, to, 0); err != nil {
				return nil, fmt.Errorf("core: adjacency[%d]: %w", from, err)
			}
		}
	}

	return g, nil
}

// AddEdge inserts an edge from→to. Undirected graphs also record the mirror
// arc to→from; a self-loop is recorded once.
// Complexity: amortized O(1)
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.edges.Append(e)
	g.adjacency[from].Append(e)
	g.arcCount++
	if !g.directed && from != to {
		g.adjacency[to].Append(Edge{From: to, To: from, Weight: weight})
		g.arcCount++
	}

	return nil
}

// HasVertex reports whether v lies in [0, VertexCount()).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}

// HasEdge reports whether an arc from→to exists.
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to int) bool {
	if !g.HasVertex(from) {
		return false
	}
	for _, e := range g.adjacency[from].Raw() {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the arcs leaving v, in insertion order.
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	arcs := g.adjacency[v].Raw()
	out := make([]Edge, len(arcs))
	copy(out, arcs)

	return out, nil
}

// NeighborIDs returns the heads of the arcs leaving v, in insertion order.
// Parallel arcs yield repeated IDs.
// Complexity: O(deg(v))
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	arcs := g.adjacency[v].Raw()
	ids := make([]int, len(arcs))
	for i, e := range arcs {
		ids[i] = e.To
	}

	return ids, nil
}

// Degree returns the number of arcs leaving v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return g.adjacency[v].Count(), nil
}

// Edges returns every edge once, in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, g.edges.Count())
	copy(out, g.edges.Raw())

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges added.
func (g *Graph) EdgeCount() int { return g.edges.Count() }

// ArcCount returns the total length of all adjacency lists: EdgeCount for a
// directed graph, twice that minus self-loops for an undirected one.
func (g *Graph) ArcCount() int { return g.arcCount }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
