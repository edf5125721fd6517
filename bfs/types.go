// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.

package bfs

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth, or a callback typed for a
// different vertex type), it is recorded and surfaced as ErrOptionViolation
// when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
// Callbacks are stored untyped so options stay usable for any vertex type;
// BFS checks them against its own V.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	onVisit any // func(v V, depth int) error
	filter  any // func(curr, neighbor V) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filter and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run when a vertex is dequeued and
// visited; returning an error stops the BFS and propagates the error.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilterNeighbor skips the edge curr→neighbor when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []V{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
