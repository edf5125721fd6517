// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
//
// Every vertex owns a dense integer key in [0, VertexCount()). Keys are assigned
// in insertion order and compacted on RemoveVertex, so algorithms may size
// parallel arrays with VertexCount() and index them with Key().

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is not a member.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with a label already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates a second edge between the same endpoints was attempted.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")
)

// Edge connects two vertices and carries a payload plus a numeric weight.
//
// For undirected graphs From/To keep the orientation used at insertion; use
// Graph.Opposite to walk the edge from either side.
type Edge[V comparable, E any] struct {
	From    V
	To      V
	Payload E
	Weight  float64
}

// config holds construction-time flags; immutable after NewGraph.
type config struct {
	directed   bool
	dense      bool
	allowLoops bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *config)

// WithDirected makes every edge one-way (From→To). Default is undirected.
func WithDirected() GraphOption {
	return func(c *config) { c.directed = true }
}

// WithDenseStorage selects the adjacency-matrix backing instead of the default
// adjacency-list backing. Matrix storage gives O(1) edge lookup at O(V²) memory.
func WithDenseStorage() GraphOption {
	return func(c *config) { c.dense = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is a simple graph over comparable vertex labels V with edge payloads E.
//
// Vertices are unique by label. At most one edge exists per endpoint pair
// (per ordered pair when directed). mu guards every field below it.
type Graph[V comparable, E any] struct {
	mu  sync.RWMutex
	cfg config

	verts     []V       // key → label
	index     map[V]int // label → key
	store     storage[V, E]
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected,
// list-backed and rejects self-loops.
// Complexity: O(1).
func NewGraph[V comparable, E any](opts ...GraphOption) *Graph[V, E] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return newGraph[V, E](c)
}

func newGraph[V comparable, E any](c config) *Graph[V, E] {
	g := &Graph[V, E]{
		cfg:   c,
		index: make(map[V]int),
	}
	if c.dense {
		g.store = &matrixStore[V, E]{}
	} else {
		g.store = &listStore[V, E]{}
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph[V, E]) Directed() bool { return g.cfg.directed }

// Dense reports whether the graph uses adjacency-matrix storage.
func (g *Graph[V, E]) Dense() bool { return g.cfg.dense }

// Looped reports whether self-loops are permitted.
func (g *Graph[V, E]) Looped() bool { return g.cfg.allowLoops }
