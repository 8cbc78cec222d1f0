// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Explore visits every vertex reachable from start and returns them in DFS
// preorder, start first. Neighbors are taken in edge insertion order, so the
// result is deterministic.
//
// Error Conditions:
//   - ErrGraphNil            : if g is nil.
//   - ErrStartVertexNotFound : if start is not a vertex of g.
//
// Complexity: O(V + E).
func Explore[V comparable, W core.Weight](g *core.Graph[V, W], start V) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	state := make(map[V]int, g.VertexCount())
	var order []V
	if err := visit(g, start, state, &order); err != nil {
		return nil, fmt.Errorf("dfs: Explore: %w", err)
	}

	return order, nil
}

// DFS traverses the whole graph, launching Explore from every unvisited vertex
// in vertex insertion order (forest traversal). Returns the combined preorder.
// Complexity: O(V + E).
func DFS[V comparable, W core.Weight](g *core.Graph[V, W]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	state := make(map[V]int, len(vertices))
	order := make([]V, 0, len(vertices))
	for _, v := range vertices {
		if state[v] != White {
			continue
		}
		if err := visit(g, v, state, &order); err != nil {
			return nil, fmt.Errorf("dfs: DFS: %w", err)
		}
	}

	return order, nil
}

// visit marks id Gray, records it, recurses into White neighbors and marks it Black.
func visit[V comparable, W core.Weight](g *core.Graph[V, W], id V, state map[V]int, order *[]V) error {
	state[id] = Gray
	*order = append(*order, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%v): %w", id, err)
	}
	for _, e := range edges {
		nbr := e.Other(id)
		if state[nbr] == White {
			if err = visit(g, nbr, state, order); err != nil {
				return err
			}
		}
	}
	state[id] = Black

	return nil
}
