// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted Graph consumed and produced by
// the algorithm packages (dfs, prim_kruskal).
//
// The Graph G = (V,E) is generic over its vertex payload V (any comparable
// type, which is also the vertex identity) and its weight W (any integer or
// floating-point kind):
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation (“e1”, “e2”, …)
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() all follow
//     insertion order.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs record an edge under its source only.
//	    Undirected graphs record it under both endpoints.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                     // O(1), idempotent
//	HasVertex(v V) bool                // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to V, w W) (Edge, error) // O(1), auto-adds endpoints
//	HasEdge(from, to V) bool               // O(1)
//
//	// Query
//	Vertices() []V                     // O(V), insertion order
//	Edges() []Edge                     // O(E), undirected edges once
//	Neighbors(v V) ([]Edge, error)     // O(deg v)
//	NeighborIDs(v V) ([]V, error)      // O(deg v), unique
//	InDegree/OutDegree/Degree(v V)     // O(1)
//	VertexCount(), EdgeCount()         // O(1)
//	TotalWeight() W                    // O(E)
//
//	// Cloning
//	CloneEmpty() *Graph                // O(V): vertices+flags only
//	Clone() *Graph                     // O(V+E)
//
// A Graph is not safe for concurrent mutation.
package core
