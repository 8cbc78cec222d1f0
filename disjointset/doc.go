// SPDX-License-Identifier: MIT

// Package disjointset provides a union-find (disjoint-set) forest with union by
// rank and path compression.
//
// What & Why
//
//   - A Forest partitions a collection of payloads into disjoint sets and
//     answers "are these two elements in the same set?" in amortized
//     near-constant time. It is the bookkeeping structure behind Kruskal's
//     minimum spanning tree (see package prim_kruskal) and connectivity
//     queries in general.
//
// Layout
//
//   - Nodes live in a single arena ([]node) owned by the Forest. A Node is an
//     index into that arena; a node's parent is another index, and a node is a
//     root iff its parent is itself. There are no pointers between nodes.
//   - Each distinct payload owns exactly one node. The payload → Node mapping
//     is a map built as nodes are created, so Lookup is O(1).
//
// Operations
//
//	New(payloads)   — one singleton set per distinct payload, in input order.
//	Make(p)         — singleton for p (or the existing node if p is known).
//	Find(n)         — root of n's set; compresses the path it walks.
//	Union(a, b)     — union by rank; returns the surviving root.
//	Connected(a, b) — Find(a) == Find(b).
//
// Ranks start at 1. When two roots of equal rank are joined, b's root is placed
// under a's root and a's root gains one rank; otherwise the lower-rank root is
// placed under the higher-rank root and ranks are unchanged.
//
// Complexity:
//
//   - Time:   O(α(n)) amortized per Find/Union.
//   - Memory: O(n) for the arena plus the payload index.
//
// Preconditions:
//
//	A Node is only meaningful for the Forest that returned it. Passing a Node
//	outside the forest's arena panics; nothing is recoverable about it.
//
// A Forest is not safe for concurrent use.
package disjointset
