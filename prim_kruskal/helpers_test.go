// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
	"github.com/stretchr/testify/require"
)

// wedge is a compact fixture row: an undirected edge U—V with weight W.
type wedge struct {
	U, V string
	W    int
}

// buildGraph constructs an undirected graph from rows, then adds isolated vertices.
func buildGraph(t testing.TB, rows []wedge, isolated ...string) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int]()
	for _, r := range rows {
		_, err := g.AddEdge(r.U, r.V, r.W)
		require.NoError(t, err)
	}
	for _, v := range isolated {
		g.AddVertex(v)
	}

	return g
}

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
//
// This graph’s MST consists of edges A—B and B—C with total weight 3.
func buildTriangle(t testing.TB) *core.Graph[string, int] {
	return buildGraph(t, []wedge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}})
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
//   - First, it ensures connectivity by adding a chain V0—V1—...—V(n-1) with random weights [1..11).
//   - Then it adds (edgesCount - (n-1)) additional random edges with random weights [1..101).
//
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph[string, float64] {
	g := core.NewGraph[string, float64]()
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(seed))

	for i := 1; i < n; i++ {
		weight := 1.0 + r.Float64() + float64(r.Intn(10))
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight)
	}

	// Duplicates are rejected with ErrMultiEdgeNotAllowed and retried.
	extra := edgesCount - (n - 1)
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := 1.0 + r.Float64() + float64(r.Intn(100))
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight); err == nil {
			i++
		}
	}

	return g
}

// buildUniqueWeightGraph creates a connected graph on n vertices with m edges
// whose weights are a permutation of 1..m.
func buildUniqueWeightGraph(n, m int, seed int64) *core.Graph[string, int] {
	r := rand.New(rand.NewSource(seed))
	type pair struct{ u, v int }
	seen := make(map[pair]bool)
	var pairs []pair
	add := func(u, v int) bool {
		if u == v || seen[pair{u, v}] || seen[pair{v, u}] {
			return false
		}
		seen[pair{u, v}] = true
		pairs = append(pairs, pair{u, v})
		return true
	}
	for i := 1; i < n; i++ {
		add(r.Intn(i), i) // random spanning tree keeps the graph connected
	}
	for len(pairs) < m {
		add(r.Intn(n), r.Intn(n))
	}

	weights := r.Perm(m)
	g := core.NewGraph[string, int]()
	for i, p := range pairs {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", p.u), fmt.Sprintf("V%d", p.v), weights[i]+1)
	}

	return g
}

// edgeKeys returns sorted "U-V:W" keys with endpoints ordered, so undirected
// edges compare equal regardless of orientation.
func edgeKeys[W core.Weight](edges []core.Edge[string, W]) []string {
	keys := make([]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		keys = append(keys, fmt.Sprintf("%s-%s:%v", u, v, e.Weight))
	}
	sort.Strings(keys)

	return keys
}

// bruteForceMST enumerates every (|V|-1)-edge subset and returns the keys of
// the lightest one that forms a spanning tree.
func bruteForceMST(g *core.Graph[string, int]) (best []string, bestWeight int) {
	edges := g.Edges()
	need := g.VertexCount() - 1
	bestWeight = -1
	chosen := make([]core.Edge[string, int], 0, need)

	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == need {
			forest := disjointset.New(g.Vertices())
			total := 0
			for _, e := range chosen {
				a, _ := forest.Lookup(e.From)
				b, _ := forest.Lookup(e.To)
				if forest.Connected(a, b) {
					return // cycle: not a tree
				}
				forest.Union(a, b)
				total += e.Weight
			}
			if bestWeight < 0 || total < bestWeight {
				bestWeight = total
				best = edgeKeys(chosen)
			}
			return
		}
		for i := start; i < len(edges); i++ {
			chosen = append(chosen, edges[i])
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best, bestWeight
}
