// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring
//     stale entries. A push only follows a relaxation of an arc leaving a settled vertex,
//     and every vertex settles once, so the heap never holds more than ArcCount()+1 items.
package dijkstra

import (
	"cmp"
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/heap"
)

// nodeItem represents a vertex and a tentative distance from the source.
type nodeItem struct {
	v    int   // vertex
	dist int64 // distance from source
}

// closer orders items so that heap.MaxHeap surfaces the smallest distance first.
func closer(a, b nodeItem) int { return cmp.Compare(b.dist, a.dist) }

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v (Unreachable if never settled).
//   - prev: if ReturnPath, prev[v] is v's predecessor on a shortest path
//     (NoPredecessor for the source and unreachable vertices); nil otherwise.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must parse (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. A source must be set (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
//  5. g must contain Source (ErrVertexNotFound).
//  6. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(-1)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}

	// 3) Validate graph
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 4) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare state.
	pq, err := heap.NewFunc(g.ArcCount()+1, closer)
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      pq,
	}

	// 6) Initialize algorithm state and run main loop.
	if err = r.init(); err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      *heap.MaxHeap[nodeItem]
}

// init sets every distance to Unreachable and pushes the source at distance 0.
func (r *runner) init() error {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0

	return r.push(r.options.Source, 0)
}

// push queues a tentative distance for v.
func (r *runner) push(v int, d int64) error {
	if err := r.pq.Add(nodeItem{v: v, dist: d}); err != nil {
		return fmt.Errorf("dijkstra: push %d: %w", v, err)
	}

	return nil
}

// process repeatedly settles the closest unsettled vertex and relaxes its arcs,
// until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	var (
		item nodeItem
		err  error
	)
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest-distance item.
		if item, err = r.pq.PopMax(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 2) Skip stale entries.
		if r.visited[item.v] {
			continue
		}

		// 3) Nothing closer remains; stop.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle and relax.
		r.visited[item.v] = true
		if err = r.relax(item.v); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving u and improves distances to its neighbors.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var newDist int64
	for _, e := range arcs {
		// impassable
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// would overflow, so it can never beat a finite distance
		if e.Weight > Unreachable-1-r.dist[u] {
			continue
		}

		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		if err = r.push(e.To, newDist); err != nil {
			return err
		}
	}

	return nil
}
