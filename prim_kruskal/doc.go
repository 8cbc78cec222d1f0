// SPDX-License-Identifier: MIT

// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Kruskal’s algorithm and Prim’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - What if G is disconnected?
//     Both Kruskal and PrimForest return a minimum spanning forest: one tree per connected
//     component, |V| − #components edges in total, no edge crossing components.
//
//   - Why MST matters:
//
//   - Network Design: cost-efficient communication or transportation networks.
//
//   - Clustering: cutting the largest edges of an MST yields single-linkage clusters.
//
//   - Subroutines: MST is a building block of many approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g) (*core.Graph, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest. A
//     disjointset.Forest merges vertices component-by-component, skipping edges whose
//     endpoints are already connected. Stop once |V|−1 edges have been added.
//
//   - Determinism: graph.Edges() returns edges in insertion order; a stable sort by weight
//     (slices.SortStableFunc) keeps that order among equal weights.
//
//   - Time: O(E log E + α(V)·E). Space: O(V + E).
//
//   - Prim(g, root) (*core.Graph, error) / PrimForest(g) (*core.Graph, error)
//
//   - Strategy: Grow a tree from root with a min-heap of candidate edges; PrimForest restarts
//     from every uncovered vertex. Equal weights pop in push order.
//
//   - Time: O(E log E). Space: O(V + E).
//
// Results
//
//	Every algorithm returns a new undirected *core.Graph holding the accepted edges with their
//	original endpoints and weights. Kruskal and PrimForest keep every input vertex; Prim keeps
//	the root's component. Use (*core.Graph).TotalWeight for the tree weight.
//
// Error Conditions
//
//   - ErrNilGraph          — graph is nil.
//   - ErrInvalidGraph      — graph.Directed() == true (MST requires undirected).
//   - core.ErrVertexNotFound (Prim only) — root does not exist.
//   - ErrUnknownMethod     — Compute with an unsupported Method.
//
// An empty graph is not an error: the result is an empty graph.
//
// Logging
//
//	Compute accepts MSTOptions.Logger (*zap.Logger). Accepted and discarded edges are logged
//	at debug level, a run summary at info level. Kruskal, Prim and PrimForest called
//	directly log nothing.
package prim_kruskal
