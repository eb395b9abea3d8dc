// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"cmp"
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/heap"
)

// lighter orders arcs so that heap.MaxHeap surfaces the smallest weight first.
func lighter(a, b core.Edge) int { return cmp.Compare(b.Weight, a.Weight) }

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex.
//
// Candidate arcs live in a heap.MaxHeap ordered by reversed weight. An arc u→v is
// pushed only when u joins the tree, so at most ArcCount() arcs are ever queued
// and the heap is sized to that bound up front.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as visited and push all arcs leaving root.
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the smallest‐weight arc (u→v).
//     b. If v is already visited, skip (this arc would form a cycle).
//     c. Otherwise, add (u→v) to MST, mark v as visited, accumulate weight.
//     d. Push all arcs from v to as‐yet‐unvisited neighbors.
//  4. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	// 1. Validate graph and root.
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: root %d", core.ErrVertexNotFound, root)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Initialize visited set, MST container, and the candidate heap.
	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64

	pq, err := heap.NewFunc(graph.ArcCount()+1, lighter)
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
	}
	grow := func(v int) error {
		visited[v] = true
		arcs, nerr := graph.Neighbors(v)
		if nerr != nil {
			return nerr
		}
		for _, e := range arcs {
			if !visited[e.To] {
				if nerr = pq.Add(e); nerr != nil {
					return fmt.Errorf("prim_kruskal: %w", nerr)
				}
			}
		}

		return nil
	}
	if err = grow(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop: extract smallest arc and expand MST until we have n-1 edges.
	var e core.Edge
	for !pq.IsEmpty() && len(mst) < n-1 {
		if e, err = pq.PopMax(); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
		}
		if visited[e.To] {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if err = grow(e.To); err != nil {
			return nil, 0, err
		}
	}

	// 4. Fewer than n-1 edges means some vertex was unreachable.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
