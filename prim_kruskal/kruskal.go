// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// Components are tracked in a unionfind.PathCompressed forest (union by size, path halving).
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate the graph; a single vertex yields the trivial MST (empty, weight=0).
//  2. Collect all edges via graph.Edges(), skip self-loops (e.From == e.To).
//  3. Stable-sort edges by ascending Weight so equal weights keep insertion order.
//  4. For each edge (u,v), if Connected(u,v) is false, Union(u,v) and include edge in MST.
//  5. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate
	n, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops: they cannot be part of a spanning tree.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 3. Sort by ascending weight.
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 4. Build MST with the disjoint-set forest.
	uf, err := unionfind.NewPathCompressed(n)
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
	}
	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
		joined      bool
	)
	for _, e := range edges {
		if joined, err = uf.Connected(e.From, e.To); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
		}
		if joined {
			continue
		}
		if err = uf.Union(e.From, e.To); err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: %w", err)
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 5. |V|-1 edges complete the tree.
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
