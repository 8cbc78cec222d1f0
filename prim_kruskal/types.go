// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/core"
)

// ErrNilGraph indicates that a nil graph was passed to an MST algorithm.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrUnknownVertex indicates an edge whose endpoint is missing from the vertex set.
// core.Graph never produces such an edge; the check guards the vertex → node mapping.
var ErrUnknownVertex = errors.New("prim_kruskal: edge endpoint outside vertex set")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither MethodKruskal nor MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal, no-op logger).
//
// Fields:
//
//	Method  string      — one of MethodPrim or MethodKruskal.
//	Root    V           — start vertex for Prim; ignored by Kruskal.
//	HasRoot bool        — Root is set; without it Prim covers every component.
//	Logger  *zap.Logger — receives per-edge debug entries and a run summary.
type MSTOptions[V comparable] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root V

	// HasRoot reports whether Root was set (the zero V may be a real vertex).
	HasRoot bool

	// Logger is never nil after DefaultOptions/NewOptions.
	Logger *zap.Logger
}

// Option configures MSTOptions.
type Option[V comparable] func(*MSTOptions[V])

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod[V comparable](m string) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot[V comparable](root V) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// WithLogger returns an Option that routes algorithm logs to l. A nil l keeps the no-op logger.
func WithLogger[V comparable](l *zap.Logger) Option[V] {
	return func(opts *MSTOptions[V]) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = unset
//	– Logger = zap.NewNop()
func DefaultOptions[V comparable]() MSTOptions[V] {
	return MSTOptions[V]{
		Method: MethodKruskal,
		Logger: zap.NewNop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions[V comparable](opts ...Option[V]) MSTOptions[V] {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal:              Kruskal(graph).
//	– MethodPrim with a Root:     Prim(graph, opts.Root).
//	– MethodPrim without a Root:  PrimForest(graph).
//	– Otherwise:                  ErrUnknownMethod.
//
// The result is a new undirected graph holding every input vertex and the
// accepted edges; use (*core.Graph).TotalWeight for its weight.
func Compute[V comparable, W core.Weight](graph *core.Graph[V, W], opts MSTOptions[V]) (*core.Graph[V, W], error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	switch opts.Method {
	case MethodKruskal:
		return kruskal(graph, log)
	case MethodPrim:
		if opts.HasRoot {
			return prim(graph, opts.Root, log)
		}
		return primForest(graph, log)
	default:
		return nil, ErrUnknownMethod
	}
}

// validate rejects inputs no MST algorithm accepts.
func validate[V comparable, W core.Weight](graph *core.Graph[V, W]) error {
	if graph == nil {
		return ErrNilGraph
	}
	if graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}
