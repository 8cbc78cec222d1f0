// SPDX-License-Identifier: MIT

package core

// CloneEmpty returns a new Graph with identical configuration and vertices
// (same order), but no edges.
// Complexity: O(V).
func (g *Graph[V, W]) CloneEmpty() *Graph[V, W] {
	clone := NewGraph[V, W]()
	clone.config = g.config
	for _, v := range g.vertices {
		clone.AddVertex(v)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Edge IDs are reassigned in the same order, so they match the source.
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	clone := g.CloneEmpty()
	for _, e := range g.edges {
		// The source already satisfied every constraint, so this cannot fail.
		_, _ = clone.AddEdge(e.From, e.To, e.Weight)
	}

	return clone
}
