// SPDX-License-Identifier: MIT
// Package dijkstra defines the options, errors and result type for
// single-source shortest paths on non-negatively weighted graphs.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Unreachable is the distance reported for a vertex the source cannot reach.
const Unreachable = -1.0

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or destination does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this cap stay unreachable.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
// Both default to +Inf (no cap, no walls).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values are
// reported as ErrBadMaxDistance when the search starts.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Zero or negative values are reported as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result holds the per-key distance and predecessor arrays of one run.
// Keys are the graph's vertex keys at the time of the run.
type Result[V comparable] struct {
	// Source is the start vertex.
	Source V
	// Dist[k] is the distance to the vertex with key k, +Inf when unreached.
	Dist []float64
	// Prev[k] is the key of the predecessor on the shortest path, -1 for the
	// source and for unreached vertices.
	Prev []int

	verts []V
	index map[V]int
}

// Vertex returns the vertex with key k as seen by this run.
func (r *Result[V]) Vertex(k int) V { return r.verts[k] }

// DistanceTo returns the shortest distance to v, or Unreachable.
func (r *Result[V]) DistanceTo(v V) (float64, error) {
	k, ok := r.index[v]
	if !ok {
		return Unreachable, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if math.IsInf(r.Dist[k], 1) {
		return Unreachable, nil
	}

	return r.Dist[k], nil
}

// PathTo reconstructs the shortest path source..v by walking predecessor keys
// back from v and reversing. An unreached v yields an empty path.
func (r *Result[V]) PathTo(v V) ([]V, error) {
	k, ok := r.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if math.IsInf(r.Dist[k], 1) {
		return nil, nil
	}
	var path []V
	for cur := k; cur != -1; cur = r.Prev[cur] {
		path = append(path, r.verts[cur])
	}
	slices.Reverse(path)

	return path, nil
}
