// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood sequences (OutgoingEdges, AdjVertices) and degree.
//
// Neighborhood policy:
//   - Directed graphs: only edges leaving v.
//   - Undirected graphs: every incident edge, self-loops once.
//
// A vertex that is not a member yields an empty sequence; callers that need
// an error should validate with Key or HasVertex first.

package core

import (
	"fmt"
	"iter"
)

// neighborsLocked snapshots the incident entries of v as parallel slices.
func (g *Graph[V, E]) neighborsLocked(v V) ([]V, []*Edge[V, E]) {
	k, ok := g.index[v]
	if !ok {
		return nil, nil
	}
	n := g.store.degree(k)
	verts := make([]V, 0, n)
	edges := make([]*Edge[V, E], 0, n)
	g.store.each(k, func(b int, e *Edge[V, E]) bool {
		verts = append(verts, g.verts[b])
		edges = append(edges, e)
		return true
	})

	return verts, edges
}

// OutgoingEdges returns a restartable sequence over the edges leaving v.
func (g *Graph[V, E]) OutgoingEdges(v V) iter.Seq[*Edge[V, E]] {
	return func(yield func(*Edge[V, E]) bool) {
		g.mu.RLock()
		_, edges := g.neighborsLocked(v)
		g.mu.RUnlock()
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

// AdjVertices returns a restartable sequence over the vertices adjacent to v.
func (g *Graph[V, E]) AdjVertices(v V) iter.Seq[V] {
	return func(yield func(V) bool) {
		g.mu.RLock()
		verts, _ := g.neighborsLocked(v)
		g.mu.RUnlock()
		for _, u := range verts {
			if !yield(u) {
				return
			}
		}
	}
}

// Adjacent returns the vertices adjacent to v together with the connecting
// edges, both in neighborhood order.
//
// Errors:
//   - ErrVertexNotFound if v is not a member.
func (g *Graph[V, E]) Adjacent(v V) ([]V, []*Edge[V, E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.index[v]; !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	verts, edges := g.neighborsLocked(v)

	return verts, edges, nil
}

// OutDegree returns the number of edges leaving v (incident edges when undirected).
//
// Errors:
//   - ErrVertexNotFound if v is not a member.
func (g *Graph[V, E]) OutDegree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	k, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return g.store.degree(k), nil
}
