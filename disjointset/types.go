// SPDX-License-Identifier: MIT

package disjointset

// Node addresses one element of a Forest. It is an index into the forest's
// arena and only valid for the Forest that created it.
type Node int

// node is one arena slot.
type node[P comparable] struct {
	// parent is the index of the parent node; parent == self for a root.
	parent Node

	// rank is an upper bound on the height of the tree rooted here.
	// Only meaningful while the node is a root.
	rank int

	// payload is the value this node was created for. Never changes.
	payload P
}

// Forest is a union-find structure over payloads of type P.
//
// The zero value is an empty forest ready for Make.
type Forest[P comparable] struct {
	nodes []node[P]  // arena, addressed by Node
	index map[P]Node // payload → node
	sets  int        // number of disjoint sets
}
