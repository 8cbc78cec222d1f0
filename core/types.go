// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types used by every
// algorithm package in this module.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Weight is the set of edge weight types: any integer or floating-point kind.
// Weights are totally ordered (NaN aside) and can be summed.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a Weight, and a Directed flag
// copied from the Graph at insertion time. Edges are values: the Graph hands
// out copies, never references into its storage.
type Edge[V comparable, W Weight] struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of the edge.
	Weight W

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// Other returns the endpoint of e opposite to v.
// For a self-loop it returns v.
func (e Edge[V, W]) Other(v V) V {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

type config struct {
	directed   bool // edge orientation
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
}

// WithDirected sets the orientation of all edges (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// pair keys the parallel-edge counter; undirected edges are counted under
// both orientations.
type pair[V comparable] struct{ from, to V }

// Graph is an in-memory weighted graph over vertex payloads of type V.
//
// Vertices and edges keep insertion order. Every vertex carries a payload
// that is also its identity, so a vertex cannot exist without one.
// An undirected edge is stored once and recorded in the adjacency of both
// endpoints.
//
// Graph is not safe for concurrent mutation.
type Graph[V comparable, W Weight] struct {
	config

	// Storage
	nextEdgeID uint64              // sequential edge ID generator
	vertices   []V                 // insertion order
	vertexSet  map[V]struct{}      // membership
	edges      []*Edge[V, W]       // insertion order
	out        map[V][]*Edge[V, W] // outgoing (directed) or incident (undirected)
	in         map[V][]*Edge[V, W] // incoming, directed graphs only
	pairs      map[pair[V]]int     // parallel-edge counter
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1).
func NewGraph[V comparable, W Weight](opts ...GraphOption) *Graph[V, W] {
	g := &Graph[V, W]{
		vertexSet: make(map[V]struct{}),
		out:       make(map[V][]*Edge[V, W]),
		in:        make(map[V][]*Edge[V, W]),
		pairs:     make(map[pair[V]]int),
	}
	for _, opt := range opts {
		opt(&g.config)
	}

	return g
}
