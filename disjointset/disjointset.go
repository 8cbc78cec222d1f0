// SPDX-License-Identifier: MIT

package disjointset

import (
	"cmp"
	"fmt"
	"strings"
)

// New builds a Forest holding one singleton set per distinct payload.
// Duplicate payloads share the node created for their first occurrence.
// Complexity: O(n).
func New[P comparable](payloads []P) *Forest[P] {
	f := &Forest[P]{
		nodes: make([]node[P], 0, len(payloads)),
		index: make(map[P]Node, len(payloads)),
	}
	for _, p := range payloads {
		f.Make(p)
	}

	return f
}

// Make creates a singleton set for p: a node that is its own parent, rank 1.
// If p already has a node, that node is returned and nothing changes.
// Complexity: O(1) amortized.
func (f *Forest[P]) Make(p P) Node {
	if f.index == nil {
		f.index = make(map[P]Node)
	}
	if n, ok := f.index[p]; ok {
		return n
	}
	n := Node(len(f.nodes))
	f.nodes = append(f.nodes, node[P]{parent: n, rank: 1, payload: p})
	f.index[p] = n
	f.sets++

	return n
}

// Lookup returns the node created for p.
// Complexity: O(1).
func (f *Forest[P]) Lookup(p P) (Node, bool) {
	n, ok := f.index[p]

	return n, ok
}

// Find returns the root of the set containing n.
//
// Every node visited on the way up is re-pointed directly at the root, so
// later calls on the same path are cheaper. The answer never changes between
// unions.
// Complexity: O(α(n)) amortized.
func (f *Forest[P]) Find(n Node) Node {
	f.mustContain(n)

	// First pass: locate the root.
	root := n
	for f.nodes[root].parent != root {
		root = f.nodes[root].parent
	}
	// Second pass: compress the walked path.
	for n != root {
		next := f.nodes[n].parent
		f.nodes[n].parent = root
		n = next
	}

	return root
}

// Union merges the sets containing a and b and returns the root of the merged
// set. If both are already in the same set it returns that root unchanged.
//
// Equal ranks: b's root is attached under a's root, whose rank grows by one.
// Unequal ranks: the lower-rank root is attached under the higher-rank root.
// Complexity: O(α(n)) amortized.
func (f *Forest[P]) Union(a, b Node) Node {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	f.sets--

	switch f.compareRank(ra, rb) {
	case 0:
		f.nodes[rb].parent = ra
		f.nodes[ra].rank++
		return ra
	case 1:
		f.nodes[rb].parent = ra
		return ra
	default:
		f.nodes[ra].parent = rb
		return rb
	}
}

// Connected reports whether a and b belong to the same set.
func (f *Forest[P]) Connected(a, b Node) bool {
	return f.Find(a) == f.Find(b)
}

// Payload returns the value n was created for.
func (f *Forest[P]) Payload(n Node) P {
	f.mustContain(n)

	return f.nodes[n].payload
}

// Rank returns n's current rank. Only roots have a meaningful rank.
func (f *Forest[P]) Rank(n Node) int {
	f.mustContain(n)

	return f.nodes[n].rank
}

// Len returns the number of nodes in the forest.
func (f *Forest[P]) Len() int { return len(f.nodes) }

// Count returns the number of disjoint sets.
func (f *Forest[P]) Count() int { return f.sets }

// Sets groups payloads by set. Groups are ordered by their earliest-created
// member, and members keep creation order.
// Complexity: O(n·α(n)).
func (f *Forest[P]) Sets() [][]P {
	slot := make(map[Node]int, f.sets)
	out := make([][]P, 0, f.sets)
	for i := range f.nodes {
		root := f.Find(Node(i))
		k, ok := slot[root]
		if !ok {
			k = len(out)
			slot[root] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], f.nodes[i].payload)
	}

	return out
}

// String formats the forest as its sets, e.g. "DisjointSet([A B] [C])".
func (f *Forest[P]) String() string {
	var sb strings.Builder
	sb.WriteString("DisjointSet(")
	for i, set := range f.Sets() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j, p := range set {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, p)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(')')

	return sb.String()
}

// compareRank orders two nodes by rank alone. Unrelated nodes may compare
// equal, so this is only used to pick the surviving root in Union.
func (f *Forest[P]) compareRank(a, b Node) int {
	return cmp.Compare(f.nodes[a].rank, f.nodes[b].rank)
}

func (f *Forest[P]) mustContain(n Node) {
	if n < 0 || int(n) >= len(f.nodes) {
		panic(fmt.Sprintf("disjointset: node %d outside forest of %d nodes", n, len(f.nodes)))
	}
}
