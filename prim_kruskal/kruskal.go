// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces a new graph holding the minimum spanning forest.
package prim_kruskal

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// candidate is an input edge rewritten to reference its endpoints'
// disjoint-set nodes. The original edge keeps payloads and weight.
type candidate[V comparable, W core.Weight] struct {
	src, dst disjointset.Node
	edge     core.Edge[V, W]
}

// Kruskal computes the minimum spanning forest of an undirected graph.
// It uses a disjoint-set forest with path compression and union by rank.
//
// For a connected graph the result is a minimum spanning tree with |V|-1
// edges; otherwise it holds one tree per connected component and no edge
// crosses components. Every input vertex appears in the result, so isolated
// vertices remain as single-vertex trees.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrInvalidGraph : if graph.Directed() == true.
//
// An empty graph yields an empty result and no error.
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed().
//  2. Build one disjoint-set node per vertex (payload → node mapping).
//  3. Rewrite each edge onto its endpoints' nodes; skip self-loops.
//  4. Stable sort by ascending Weight: equal weights keep input order.
//  5. For each edge (u,v): if Find(u) != Find(v), add it to the result and Union(u,v);
//     otherwise discard it (it would close a cycle).
//  6. Stop once |V|-1 edges were accepted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[V comparable, W core.Weight](graph *core.Graph[V, W]) (*core.Graph[V, W], error) {
	return kruskal(graph, zap.NewNop())
}

func kruskal[V comparable, W core.Weight](graph *core.Graph[V, W], log *zap.Logger) (*core.Graph[V, W], error) {
	// 1. Validate input.
	if err := validate(graph); err != nil {
		return nil, err
	}

	// The result keeps the input's vertex order and flags, without edges.
	mst := graph.CloneEmpty()
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return mst, nil
	}

	// 2. One singleton set per vertex.
	forest := disjointset.New(vertices)

	// 3. Rewrite edges onto disjoint-set nodes.
	edges := graph.Edges()
	candidates := make([]candidate[V, W], 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			// Self-loops cannot be part of a spanning tree.
			continue
		}
		src, okSrc := forest.Lookup(e.From)
		dst, okDst := forest.Lookup(e.To)
		if !okSrc || !okDst {
			return nil, fmt.Errorf("%w: %s (%v-%v)", ErrUnknownVertex, e.ID, e.From, e.To)
		}
		candidates = append(candidates, candidate[V, W]{src: src, dst: dst, edge: e})
	}

	// 4. Stable sort keeps input order among equal weights.
	slices.SortStableFunc(candidates, func(a, b candidate[V, W]) int {
		return cmp.Compare(a.edge.Weight, b.edge.Weight)
	})

	// 5. Greedy selection.
	want := len(vertices) - 1
	accepted := 0
	for _, c := range candidates {
		if forest.Find(c.src) == forest.Find(c.dst) {
			log.Debug("discard edge",
				zap.String("edge", c.edge.ID),
				zap.Any("from", c.edge.From),
				zap.Any("to", c.edge.To),
				zap.Any("weight", c.edge.Weight))
			continue
		}
		if _, err := mst.AddEdge(c.edge.From, c.edge.To, c.edge.Weight); err != nil {
			return nil, fmt.Errorf("prim_kruskal: Kruskal: add %s: %w", c.edge.ID, err)
		}
		forest.Union(c.src, c.dst)
		accepted++
		log.Debug("accept edge",
			zap.String("edge", c.edge.ID),
			zap.Any("from", c.edge.From),
			zap.Any("to", c.edge.To),
			zap.Any("weight", c.edge.Weight))

		// 6. A spanning tree is complete.
		if accepted == want {
			break
		}
	}

	log.Info("kruskal finished",
		zap.Int("vertices", len(vertices)),
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", accepted),
		zap.Int("trees", forest.Count()))

	return mst, nil
}
