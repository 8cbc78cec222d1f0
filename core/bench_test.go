// SPDX-License-Identifier: MIT

// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spanforest/core"
)

// BenchmarkAddEdge measures adding a star of edges in the default
// undirected graph.
func BenchmarkAddEdge(b *testing.B) {
	names := make([]string, b.N)
	for i := range names {
		names[i] = fmt.Sprintf("N%d", i)
	}
	g := core.NewGraph[string, int64]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", names[i], int64(i))
	}
}

// BenchmarkAddEdge_MultiEdges measures adding parallel edges when
// multi-edges are permitted.
func BenchmarkAddEdge_MultiEdges(b *testing.B) {
	g := core.NewGraph[int, int64](core.WithMultiEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through 100 targets to stress parallel edges.
		_, _ = g.AddEdge(-1, i%100, int64(i))
	}
}

// BenchmarkNeighbors measures adjacency lookups on a hub vertex.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph[int, float64]()
	for i := 1; i <= 1000; i++ {
		_, _ = g.AddEdge(0, i, float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
