// SPDX-License-Identifier: MIT

// Package core: vertex and edge lifecycle on the Graph type defined in types.go.
//
// Adjacency is stored per vertex as an insertion-ordered slice of edge
// pointers: out[v] holds outgoing edges (directed) or all incident edges
// (undirected); in[v] holds incoming edges of a directed graph.

package core

import (
	"fmt"
	"slices"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts vertex v into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) {
	if _, exists := g.vertexSet[v]; exists {
		return
	}
	g.vertexSet[v] = struct{}{}
	g.vertices = append(g.vertices, v)
}

// HasVertex reports whether vertex v exists in the graph.
// Complexity: O(1).
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, exists := g.vertexSet[v]

	return exists
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns a copy of it. Missing endpoints are added first.
// For undirected graphs the edge is recorded in the adjacency of both endpoints.
//
// Returns ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) (Edge[V, W], error) {
	// 1) Loop constraint
	if from == to && !g.allowLoops {
		return Edge[V, W]{}, ErrLoopNotAllowed
	}
	// 2) Multi-edge constraint (undirected pairs are counted both ways)
	if !g.allowMulti && g.pairs[pair[V]{from, to}] > 0 {
		return Edge[V, W]{}, ErrMultiEdgeNotAllowed
	}
	// 3) Ensure both endpoints exist (idempotent)
	g.AddVertex(from)
	g.AddVertex(to)

	// 4) Build and store the edge
	g.nextEdgeID++
	e := &Edge[V, W]{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges = append(g.edges, e)

	// 5) Adjacency
	g.out[from] = append(g.out[from], e)
	g.pairs[pair[V]{from, to}]++
	if g.directed {
		g.in[to] = append(g.in[to], e)
	} else if from != to {
		// Mirror for the reverse direction (loops skip the mirror).
		g.out[to] = append(g.out[to], e)
		g.pairs[pair[V]{to, from}]++
	}

	return *e, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected graphs the order of endpoints does not matter.
// Complexity: O(1).
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	return g.pairs[pair[V]{from, to}] > 0
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[V, W]) Vertices() []V {
	return slices.Clone(g.vertices)
}

// Edges returns all edges in insertion order. Undirected edges appear once.
// Complexity: O(E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	return copyEdges(g.edges)
}

// VertexCount returns |V|.
func (g *Graph[V, W]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph[V, W]) EdgeCount() int { return len(g.edges) }

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph[V, W]) TotalWeight() W {
	var total W
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// Directed reports whether edges are one-way.
func (g *Graph[V, W]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[V, W]) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph[V, W]) Multigraph() bool { return g.allowMulti }

func copyEdges[V comparable, W Weight](src []*Edge[V, W]) []Edge[V, W] {
	out := make([]Edge[V, W], len(src))
	for i, e := range src {
		out[i] = *e
	}

	return out
}
