// SPDX-License-Identifier: MIT

package core

// Neighbors returns the edges leaving v: outgoing edges for a directed graph,
// every incident edge for an undirected one. Use Edge.Other(v) to get the
// vertex on the far side. Order is edge insertion order.
//
// Returns ErrVertexNotFound if v is not in the graph.
// Complexity: O(deg(v)).
func (g *Graph[V, W]) Neighbors(v V) ([]Edge[V, W], error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return copyEdges(g.out[v]), nil
}

// NeighborIDs returns the distinct vertices adjacent to v, in first-seen order.
// Complexity: O(deg(v)).
func (g *Graph[V, W]) NeighborIDs(v V) ([]V, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	seen := make(map[V]struct{}, len(g.out[v]))
	ids := make([]V, 0, len(g.out[v]))
	for _, e := range g.out[v] {
		w := e.Other(v)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		ids = append(ids, w)
	}

	return ids, nil
}

// InDegree returns the number of edges entering v.
// For undirected graphs it equals Degree(v).
func (g *Graph[V, W]) InDegree(v V) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.out[v]), nil
	}

	return len(g.in[v]), nil
}

// OutDegree returns the number of edges leaving v.
// For undirected graphs it equals Degree(v).
func (g *Graph[V, W]) OutDegree(v V) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.out[v]), nil
}

// Degree returns the number of edges incident to v. In a directed graph this
// is in-degree plus out-degree; an undirected edge counts once, a self-loop
// counts once.
func (g *Graph[V, W]) Degree(v V) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.out[v]), nil
	}

	return len(g.in[v]) + len(g.out[v]), nil
}
