package dfs

import (
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/stack"
)

// frame is one vertex on the explicit DFS stack together with the index of
// the next neighbor to examine.
type frame struct {
	vertex int
	next   int
}

// Iterative returns the pre-order discovery sequence of a depth-first search
// from start, identical to DFS(g, start).Path, without recursion.
// The frame stack is bounded by VertexCount(): a vertex is pushed only once.
// Complexity: O(V + E) time, O(V) memory.
func Iterative(g *core.Graph, start int) ([]int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 2. Prepare bounded stack and bookkeeping
	n := g.VertexCount()
	frames, err := stack.New[frame](n)
	if err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	visited := make([]bool, n)
	path := make([]int, 0, n)
	adjacency := make([][]int, n) // lazily fetched neighbor lists

	discover := func(v int) error {
		visited[v] = true
		path = append(path, v)
		if adjacency[v], err = g.NeighborIDs(v); err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
		}

		return frames.Push(frame{vertex: v})
	}

	if err = discover(start); err != nil {
		return nil, err
	}

	// 3. Advance the top frame until every frame is exhausted
	var top frame
	for !frames.IsEmpty() {
		if top, err = frames.Pop(); err != nil {
			return nil, err
		}
		nbs := adjacency[top.vertex]
		for top.next < len(nbs) && visited[nbs[top.next]] {
			top.next++
		}
		if top.next == len(nbs) {
			continue // finished
		}

		child := nbs[top.next]
		top.next++
		if err = frames.Push(top); err != nil {
			return nil, err
		}
		if err = discover(child); err != nil {
			return nil, err
		}
	}

	return path, nil
}
