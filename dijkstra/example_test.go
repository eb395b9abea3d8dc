// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/Naxaes/Algorithms/core"
	"github.com/Naxaes/Algorithms/dijkstra"
)

// ExampleDijkstra_Triangle demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra_triangle() {
	// 0—1 (1), 1—2 (2), 0—2 (5)
	g, _ := core.NewGraph(3, core.WithWeighted())
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 1 3]
}

// ExampleDijkstra_MediumGraph demonstrates path reconstruction on a directed graph.
func ExampleDijkstra_mediumGraph() {
	g, _ := core.NewGraph(4, core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, 0, 3)
	fmt.Printf("dist[3]=%d, path=%v\n", dist[3], path)
	// Output: dist[3]=5, path=[0 1 3]
}

// ExampleDijkstra_Thresholds shows MaxDistance capping exploration.
func ExampleDijkstra_thresholds() {
	g, _ := core.NewGraph(4, core.WithWeighted())
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v, d := range dist {
		if d == dijkstra.Unreachable {
			fmt.Printf("%d: unreachable\n", v)
			continue
		}
		fmt.Printf("%d: %d\n", v, d)
	}
	// Output:
	// 0: 0
	// 1: 2
	// 2: 6
	// 3: unreachable
}
