// SPDX-License-Identifier: MIT

// Package spanforest computes minimum spanning forests of in-memory weighted
// graphs, built on a union-find (disjoint-set) forest.
//
// 🚀 What is spanforest?
//
//	A small, deterministic library and command that brings together:
//		• Disjoint sets: arena-backed union by rank with path compression
//		• Core primitives: a generic Graph over any comparable vertex payload
//		• Traversals: DFS, cycle detection, components, topological order
//		• Minimum spanning trees: Kruskal, Prim and a Prim forest
//
// Packages:
//
//	disjointset/       — Forest[P]: Make, Find, Union, Connected, Sets
//	core/              — Graph[V, W], Edge, options for direction, loops, multi-edges
//	dfs/               — Explore, DFS, HasCycle, Components, TopologicalSort
//	prim_kruskal/      — Kruskal, Prim, PrimForest, Compute with MSTOptions
//	internal/edgelist/ — "src dst weight" text format
//	internal/app/      — one CLI run: read, compute, print
//	cmd/spanforest/    — the cobra command
//
// Quick ASCII example:
//
//	A──1──B
//	│ ╲   │
//	4  5  2
//	│   ╲ │
//	D──3──C
//
//	Kruskal keeps A–B, B–C and C–D, total weight 6.
//
// Command line:
//
//	spanforest --input graph.txt --method prim --root A --verbose
package spanforest
