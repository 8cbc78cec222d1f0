// SPDX-License-Identifier: MIT

package dfs

import (
	"slices"

	"github.com/katalvlaran/spanforest/core"
)

// Components returns the connected components of g, ignoring edge direction
// (weakly connected components for a directed graph).
//
// Components are ordered by their earliest vertex and members keep vertex
// insertion order, so the result is deterministic.
// Complexity: O(V + E).
func Components[V comparable, W core.Weight](g *core.Graph[V, W]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	pos := make(map[V]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i
	}

	// Undirected view of the adjacency, built from the edge list.
	adj := make(map[V][]V, len(vertices))
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	seen := make(map[V]bool, len(vertices))
	var out [][]V
	for _, root := range vertices {
		if seen[root] {
			continue
		}
		// Iterative DFS keeps deep components off the call stack.
		seen[root] = true
		stack := []V{root}
		comp := []V{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[v] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
					comp = append(comp, w)
				}
			}
		}
		slices.SortFunc(comp, func(a, b V) int { return pos[a] - pos[b] })
		out = append(out, comp)
	}

	return out, nil
}
