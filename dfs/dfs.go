// Package dfs implements depth-first search (single-source and forest) on core.Graph.
// It supports directed and undirected graphs, cancellation, pre- and post-order
// hooks, depth and neighbor limits, full-graph traversal, and diagnostics.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Iterative(g, start): the same discovery order driven by an explicit stack
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside the graph.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/dynarray"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph          // underlying graph
	opts  DFSOptions           // traversal options
	res   *DFSResult           // result collector
	path  *dynarray.Array[int] // pre-order, grown as vertices are discovered
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Neighbors are explored in adjacency insertion order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result; Depth and Parent default to -1
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = noParent
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res, path: dynarray.FromSlice[int](nil)}

	// 5. Traverse: forest or single tree
	var err error
	if dopts.FullTraversal {
		for v := 0; v < n && err == nil; v++ {
			if !res.Visited[v] {
				err = walker.traverse(v, 0)
			}
		}
	} else {
		err = walker.traverse(start, 0)
	}

	// 6. Expose pre-order and diagnostics
	res.Path = walker.path.Raw()
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, err
}

// traverse visits vertex v at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(v int, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited, record depth and discovery
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.path.Append(v)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			// abort and clear post-order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 5. Fetch neighbors once
	nbs, err := w.graph.NeighborIDs(v)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
	}

	// 6. Explore each neighbor; self-loops fall out as already visited
	var nid int
	for _, nid = range nbs {
		if w.res.Visited[nid] {
			continue
		}

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}

		w.res.Parent[nid] = v
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
		// a depth-limited child is left undiscovered
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = noParent
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
