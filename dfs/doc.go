// Package dfs implements depth-first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Iterative: the same pre-order as DFS, driven by a bounded stack.Stack
//     instead of the call stack, for graphs deep enough to matter.
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects pre-order Path, post-order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - Iterative:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle discovered in DAG operations
//   - ErrNotDirected          TopologicalSort on an undirected graph
//   - ErrNotReachable         PathTo on an unvisited vertex
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
