package core

import (
	"errors"

	"github.com/Naxaes/Algorithms/dynarray"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a negative vertex count passed to NewGraph.
	ErrInvalidVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a vertex outside [0, VertexCount()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a weighted arc From→To. In an undirected graph every edge is
// stored as two arcs, one in each endpoint's adjacency list.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the cost of the edge (zero in unweighted graphs).
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an adjacency-list graph over the vertices 0..n-1.
type Graph struct {
	// Configuration flags
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage
	adjacency []*dynarray.Array[Edge] // adjacency[v] holds the arcs leaving v
	edges     *dynarray.Array[Edge]   // every edge once, in insertion order
	arcCount  int                     // total entries across all adjacency lists
}

// adjacencyCapacity is the starting capacity of each vertex's adjacency list.
const adjacencyCapacity = 4
