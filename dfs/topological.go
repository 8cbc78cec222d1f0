// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/spanforest/core"
)

var (
	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates an operation that requires a directed graph.
	ErrNotDirected = errors.New("dfs: graph is not directed")
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable, W core.Weight] struct {
	graph *core.Graph[V, W] // the graph being sorted
	state map[V]int         // visitation state: White, Gray, Black
	order []V               // recorded post-order sequence
}

// TopologicalSort computes a linear ordering of the vertices of a directed
// graph such that for every edge u→v, u appears before v.
//
// Error Conditions:
//   - ErrGraphNil      : if g is nil.
//   - ErrNotDirected   : if g is undirected.
//   - ErrCycleDetected : if g contains a cycle (including a self-loop).
//
// Complexity: O(V + E).
func TopologicalSort[V comparable, W core.Weight](g *core.Graph[V, W]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	verts := g.Vertices()
	sorter := &topoSorter[V, W]{
		graph: g,
		state: make(map[V]int, len(verts)),
		order: make([]V, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order is a topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter[V, W]) visit(id V) error {
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
