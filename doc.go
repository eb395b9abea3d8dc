// Package algorithms is a collection of classic data structures and
// algorithms written for study.
//
// Containers:
//
//	dynarray/   — growable array with doubling reallocation
//	heap/       — bounded binary max-heap plus Heapify, BuildMaxHeap and heap sort
//	queue/      — bounded ring-buffer FIFO
//	stack/      — bounded LIFO
//	unionfind/  — quick-find, quick-union, weighted and path-compressed disjoint sets
//
// Algorithms:
//
//	sorting/      — insertion, bubble, selection, merge, quick, heap, counting, radix
//	core/         — integer-indexed graph with dynarray adjacency lists
//	dfs/, bfs/    — traversals with hooks, depth limits and path reconstruction
//	prim_kruskal/ — minimum spanning trees
//	dijkstra/     — single-source shortest paths
//
// Support:
//
//	arrayutil/ — Swap, Copy, MinMax and array printing
//	timing/    — named section timer with an optional Prometheus histogram
//	config/    — YAML scenario file
//	demo/      — runs every scenario and builds a report
//
// The cmd/algorithms binary ties these together:
//
//	go run ./cmd/algorithms -format json -timings
//
// None of the containers are safe for concurrent use.
package algorithms
