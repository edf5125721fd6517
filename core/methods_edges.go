// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() walks source keys ascending; within a source, list storage keeps
//     insertion order and matrix storage keeps target key order.
//   - Undirected edges are yielded once, from the endpoint they were inserted from.
//
// Concurrency:
//   - Mutations under mu.Lock; queries under mu.RLock.

package core

import (
	"fmt"
	"iter"
	"math"
)

// AddEdge inserts an edge a→b (a–b when undirected) with the given payload and weight.
//
// Validation happens before any mutation, so a failed call leaves the graph unchanged.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is not a member.
//   - ErrLoopNotAllowed if a == b and loops are disabled.
//   - ErrDuplicateEdge if the pair already has an edge.
//   - ErrBadWeight if weight is NaN or ±Inf.
//
// Complexity: O(deg(a)) for list storage, O(1) for matrix storage.
func (g *Graph[V, E]) AddEdge(a, b V, payload E, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ka, okA := g.index[a]
	kb, okB := g.index[b]
	if !okA || !okB {
		return fmt.Errorf("%w: edge %v→%v", ErrVertexNotFound, a, b)
	}
	if ka == kb && !g.cfg.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}
	if g.store.get(ka, kb) != nil {
		return fmt.Errorf("%w: %v→%v", ErrDuplicateEdge, a, b)
	}

	e := &Edge[V, E]{From: a, To: b, Payload: payload, Weight: weight}
	g.store.put(ka, kb, e)
	if !g.cfg.directed && ka != kb {
		g.store.put(kb, ka, e)
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge between a and b (and its mirror when undirected).
//
// Errors:
//   - ErrVertexNotFound if either endpoint is not a member.
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph[V, E]) RemoveEdge(a, b V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ka, okA := g.index[a]
	kb, okB := g.index[b]
	if !okA || !okB {
		return fmt.Errorf("%w: edge %v→%v", ErrVertexNotFound, a, b)
	}
	if g.store.get(ka, kb) == nil {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, a, b)
	}
	g.store.del(ka, kb)
	if !g.cfg.directed && ka != kb {
		g.store.del(kb, ka)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether an edge a→b exists. Undirected edges answer both ways.
func (g *Graph[V, E]) HasEdge(a, b V) bool {
	_, ok := g.Edge(a, b)

	return ok
}

// Edge returns the edge a→b if present. The record is live; treat it as read-only.
func (g *Graph[V, E]) Edge(a, b V) (*Edge[V, E], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ka, okA := g.index[a]
	kb, okB := g.index[b]
	if !okA || !okB {
		return nil, false
	}
	e := g.store.get(ka, kb)

	return e, e != nil
}

// Opposite returns the endpoint of e that is not v.
// ok is false when v is not an endpoint of e.
func (g *Graph[V, E]) Opposite(v V, e *Edge[V, E]) (V, bool) {
	if v == e.From {
		return e.To, true
	}
	if v == e.To {
		return e.From, true
	}
	var zero V

	return zero, false
}

// EdgeCount returns the number of distinct edges. Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// edgesLocked snapshots every edge once in the documented order.
func (g *Graph[V, E]) edgesLocked() []*Edge[V, E] {
	out := make([]*Edge[V, E], 0, g.edgeCount)
	for a := range g.verts {
		g.store.each(a, func(b int, e *Edge[V, E]) bool {
			if g.cfg.directed || a == b || g.index[e.From] == a {
				out = append(out, e)
			}
			return true
		})
	}

	return out
}

// Edges returns a restartable sequence over every edge of the graph.
func (g *Graph[V, E]) Edges() iter.Seq[*Edge[V, E]] {
	return func(yield func(*Edge[V, E]) bool) {
		g.mu.RLock()
		snap := g.edgesLocked()
		g.mu.RUnlock()
		for _, e := range snap {
			if !yield(e) {
				return
			}
		}
	}
}
