// SPDX-License-Identifier: MIT

package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/disjointset"
)

// ExampleForest_Union joins {A,B} and {C,D} and queries membership.
func ExampleForest_Union() {
	f := disjointset.New([]string{"A", "B", "C", "D"})
	a, _ := f.Lookup("A")
	b, _ := f.Lookup("B")
	c, _ := f.Lookup("C")
	d, _ := f.Lookup("D")

	f.Union(a, b)
	f.Union(c, d)

	fmt.Println(f.Connected(a, b), f.Connected(a, c), f.Count())
	fmt.Println(f)
	// Output:
	// true false 2
	// DisjointSet([A B] [C D])
}
