// SPDX-License-Identifier: MIT

// Package dfs implements cycle detection for both directed and undirected
// core.Graphs using depth-first search with three-color marking.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// HasCycle reports whether g contains a cycle.
//
//   - Directed graphs: a cycle exists iff DFS meets a Gray vertex (back-edge).
//   - Undirected graphs: a cycle exists iff DFS meets an already visited vertex
//     through any edge other than the one it arrived by. Parallel edges and
//     self-loops therefore count as cycles.
//
// Returns (false, ErrGraphNil) for a nil graph.
func HasCycle[V comparable, W core.Weight](g *core.Graph[V, W]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	state := make(map[V]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] != White {
			continue
		}
		var (
			found bool
			err   error
		)
		if g.Directed() {
			found, err = directedBackEdge(g, v, state)
		} else {
			found, err = undirectedBackEdge(g, v, "", state)
		}
		if err != nil {
			return false, fmt.Errorf("dfs: HasCycle: %w", err)
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// directedBackEdge explores from id and reports whether a Gray vertex is reachable.
func directedBackEdge[V comparable, W core.Weight](g *core.Graph[V, W], id V, state map[V]int) (bool, error) {
	state[id] = Gray
	edges, err := g.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("Neighbors(%v): %w", id, err)
	}
	for _, e := range edges {
		switch state[e.To] {
		case Gray:
			return true, nil
		case White:
			found, err := directedBackEdge(g, e.To, state)
			if err != nil || found {
				return found, err
			}
		}
	}
	state[id] = Black

	return false, nil
}

// undirectedBackEdge explores from id, having arrived through edge viaID
// ("" for a root), and reports whether a non-tree edge was found.
func undirectedBackEdge[V comparable, W core.Weight](g *core.Graph[V, W], id V, viaID string, state map[V]int) (bool, error) {
	state[id] = Gray
	edges, err := g.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("Neighbors(%v): %w", id, err)
	}
	for _, e := range edges {
		if e.ID == viaID {
			continue
		}
		nbr := e.Other(id)
		if state[nbr] != White {
			return true, nil
		}
		found, err := undirectedBackEdge(g, nbr, e.ID, state)
		if err != nil || found {
			return found, err
		}
	}
	state[id] = Black

	return false, nil
}
