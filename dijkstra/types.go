// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not specified")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that PathTo was asked for an unreachable target.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Unreachable is the distance reported for vertices the search never settled.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in the predecessor slice.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (must be present in the graph).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices farther than this are left Unreachable. Must be ≥ 0.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0.
type Options struct {
	Source           int   // The source vertex; -1 until set
	ReturnPath       bool  // Whether to return the predecessor slice
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be supplied.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded and surfaces as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// A non-positive value is recorded and surfaces as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex.
//
// Defaults:
//   - ReturnPath:       false
//   - MaxDistance:      math.MaxInt64 (no distance limit)
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable)
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor slice
// returned with WithReturnPath.
func PathTo(prev []int, source, target int) ([]int, error) {
	if target < 0 || target >= len(prev) {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, target)
	}
	var path []int
	for v := target; v != NoPredecessor; v = prev[v] {
		path = append(path, v)
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: to %d", ErrNoPath, target)
		}
	}
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, target)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
