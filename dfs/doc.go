// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle detection,
// connected components and topological sort on a core.Graph.
//
// What:
//
//   - Explore: every vertex reachable from a start vertex, in DFS preorder.
//   - DFS: full-graph (forest) traversal from each unvisited vertex.
//   - HasCycle: back-edge detection with White/Gray/Black marking. In an
//     undirected graph any non-tree edge closes a cycle, so a spanning
//     forest is exactly an undirected graph for which HasCycle is false.
//   - Components: connected components, ignoring direction.
//   - TopologicalSort: linear order of a DAG, ErrCycleDetected otherwise.
//
// All traversals follow vertex and edge insertion order, so results are
// deterministic for a given graph.
//
// Complexity:
//
//   - All functions: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrNotDirected          TopologicalSort on an undirected graph
package dfs
