// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
)

// ExampleHasCycle shows that closing a path into a ring creates a cycle.
//
//	A───B       A───B
//	    │   →   │   │
//	C───D       C───D
func ExampleHasCycle() {
	g := core.NewGraph[string, int]()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "D", 1)
	_, _ = g.AddEdge("D", "C", 1)

	before, _ := dfs.HasCycle(g)
	_, _ = g.AddEdge("C", "A", 1)
	after, _ := dfs.HasCycle(g)

	fmt.Println(before, after)
	// Output: false true
}

// ExampleComponents lists the connected components of a two-island graph.
func ExampleComponents() {
	g := core.NewGraph[string, int]()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 2)

	comps, _ := dfs.Components(g)
	fmt.Println(comps)
	// Output: [[A B] [C D]]
}
