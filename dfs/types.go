// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal
// and simple-path enumeration, including pre-order hooks, depth limiting,
// neighbor filtering, path caps, and basic diagnostics.

package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the AllPaths destination does not exist.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")

	// ErrOptionViolation is returned when an Option value is out of range or
	// a callback is typed for a different vertex type.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS and AllPaths.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
// Complexity remains O(V+E) for DFS when filters and hooks are O(1).
type Options struct {
	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, stops AllPaths after that many paths. Default 0 (all).
	MaxPaths int

	onVisit any // func(v V, depth int) error
	filter  any // func(v V) bool

	err error
}

// DefaultOptions returns Options with no limits, no hooks and no filtering.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook called when a vertex is first
// discovered. Returning an error aborts the traversal. Ignored by AllPaths.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option {
	return func(o *Options) {
		o.onVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false. Skips are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option {
	return func(o *Options) {
		o.filter = fn
	}
}

// WithMaxPaths stops AllPaths after n paths have been found.
// n must be positive.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPaths must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []V

	// Depth maps each vertex to its distance (#edges) in the DFS tree.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start vertex has no entry.
	Parent map[V]V

	// SkippedNeighbors reports how many neighbors were skipped
	// because FilterNeighbor returned false.
	SkippedNeighbors int
}

// hooks are the typed callbacks resolved from Options for one vertex type.
type hooks[V comparable] struct {
	onVisit func(V, int) error
	filter  func(V) bool
}

// resolve applies opts and checks the stored callbacks against V.
func resolve[V comparable](opts []Option) (Options, hooks[V], error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	h := hooks[V]{
		onVisit: func(V, int) error { return nil },
		filter:  func(V) bool { return true },
	}
	if o.err != nil {
		return o, h, o.err
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(V, int) error)
		if !ok {
			return o, h, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, o.onVisit)
		}
		if fn != nil {
			h.onVisit = fn
		}
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(V) bool)
		if !ok {
			return o, h, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
		if fn != nil {
			h.filter = fn
		}
	}

	return o, h, nil
}
