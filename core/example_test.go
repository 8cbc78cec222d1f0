// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph with integer weights:
	g := core.NewGraph[string, int]()

	// 2) Add edges (auto-adds vertices A, B, C):
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 3)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	fmt.Println("Total weight:", g.TotalWeight())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// Total weight: 6
}

// ExampleGraph_directed shows degrees on a directed graph.
func ExampleGraph_directed() {
	g := core.NewGraph[string, float64](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0.5)
	_, _ = g.AddEdge("C", "B", 1.5)

	in, _ := g.InDegree("B")
	out, _ := g.OutDegree("B")
	fmt.Println(in, out, g.HasEdge("B", "A"))

	// Output:
	// 2 0 false
}
