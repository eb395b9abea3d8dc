// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log E) time.
//   - Its priority queue is a heap.MaxHeap with reversed comparison, sized once
//     from the graph's arc count.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor slice; PathTo rebuilds each path.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Invalid option values are recorded and reported by Dijkstra, never panicked on.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, _ := dijkstra.PathTo(prev, 0, 4)
//	fmt.Println(dist[4], path)
package dijkstra
