// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected *core.Graph and grows the MST from a root vertex using a min‐heap.
package prim_kruskal

import (
	"cmp"
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
)

// Prim computes the minimum spanning tree of the connected component that
// contains root, growing outwards from root with a min‐heap.
//
// The result holds exactly the vertices reachable from root and |C|-1 edges,
// where |C| is the size of that component.
//
// Error Conditions:
//   - ErrNilGraph           : if graph is nil.
//   - ErrInvalidGraph       : if graph.Directed() == true.
//   - core.ErrVertexNotFound: if root does not exist in the graph.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its edges to unvisited neighbors into pq.
//  3. While pq not empty:
//     a. Pop the smallest‐weight edge (earliest pushed among equal weights).
//     b. If its far endpoint is already visited, skip (this edge would form a cycle).
//     c. Otherwise add the edge, mark the endpoint visited and push its edges.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[V comparable, W core.Weight](graph *core.Graph[V, W], root V) (*core.Graph[V, W], error) {
	return prim(graph, root, zap.NewNop())
}

// PrimForest computes a minimum spanning forest by running Prim from every
// vertex not yet covered, in vertex insertion order. Like Kruskal, the result
// contains every input vertex; an empty graph yields an empty result.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrInvalidGraph : if graph.Directed() == true.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimForest[V comparable, W core.Weight](graph *core.Graph[V, W]) (*core.Graph[V, W], error) {
	return primForest(graph, zap.NewNop())
}

func prim[V comparable, W core.Weight](graph *core.Graph[V, W], root V, log *zap.Logger) (*core.Graph[V, W], error) {
	if err := validate(graph); err != nil {
		return nil, err
	}
	if !graph.HasVertex(root) {
		return nil, core.ErrVertexNotFound
	}

	mst := core.NewGraph[V, W]()
	mst.AddVertex(root)
	visited := make(map[V]bool, graph.VertexCount())
	added, err := grow(graph, root, visited, mst, log)
	if err != nil {
		return nil, fmt.Errorf("prim_kruskal: Prim: %w", err)
	}

	log.Info("prim finished",
		zap.Any("root", root),
		zap.Int("vertices", mst.VertexCount()),
		zap.Int("accepted", added))

	return mst, nil
}

func primForest[V comparable, W core.Weight](graph *core.Graph[V, W], log *zap.Logger) (*core.Graph[V, W], error) {
	if err := validate(graph); err != nil {
		return nil, err
	}

	mst := graph.CloneEmpty()
	vertices := graph.Vertices()
	visited := make(map[V]bool, len(vertices))
	trees, accepted := 0, 0
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		added, err := grow(graph, v, visited, mst, log)
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: PrimForest: %w", err)
		}
		trees++
		accepted += added
	}

	log.Info("prim forest finished",
		zap.Int("vertices", len(vertices)),
		zap.Int("accepted", accepted),
		zap.Int("trees", trees))

	return mst, nil
}

// grow runs Prim from root over unvisited vertices, adding accepted edges to
// mst. It returns the number of edges added.
func grow[V comparable, W core.Weight](
	graph *core.Graph[V, W],
	root V,
	visited map[V]bool,
	mst *core.Graph[V, W],
	log *zap.Logger,
) (int, error) {
	pq := &edgePQ[V, W]{}
	seq := 0

	// push enqueues every edge from v to an unvisited neighbor.
	push := func(v V) error {
		edges, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			to := e.Other(v)
			if e.From == e.To || visited[to] {
				continue
			}
			heap.Push(pq, primItem[V, W]{edge: e, to: to, seq: seq})
			seq++
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return 0, err
	}

	added := 0
	for pq.Len() > 0 {
		it := heap.Pop(pq).(primItem[V, W])
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		if _, err := mst.AddEdge(it.edge.From, it.edge.To, it.edge.Weight); err != nil {
			return added, err
		}
		added++
		log.Debug("accept edge",
			zap.String("edge", it.edge.ID),
			zap.Any("from", it.edge.From),
			zap.Any("to", it.edge.To),
			zap.Any("weight", it.edge.Weight))

		if err := push(it.to); err != nil {
			return added, err
		}
	}

	return added, nil
}

// primItem is a heap entry: an edge and the vertex it would add.
type primItem[V comparable, W core.Weight] struct {
	edge core.Edge[V, W]
	to   V   // endpoint not yet in the tree when pushed
	seq  int // push order, breaks weight ties
}

// edgePQ implements heap.Interface for a min‐heap of primItem, ordered by
// Weight and then push order.
type edgePQ[V comparable, W core.Weight] []primItem[V, W]

// Len returns the number of edges in the priority queue.
func (pq edgePQ[V, W]) Len() int { return len(pq) }

// Less orders by ascending weight; equal weights pop in push order.
func (pq edgePQ[V, W]) Less(i, j int) bool {
	if c := cmp.Compare(pq[i].edge.Weight, pq[j].edge.Weight); c != 0 {
		return c < 0
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new primItem to the heap. Called by heap.Push.
func (pq *edgePQ[V, W]) Push(x any) { *pq = append(*pq, x.(primItem[V, W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
