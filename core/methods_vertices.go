// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, key index and vertex sequences.
//
// Determinism:
//   - Vertices() and KeyedVertices() follow key order, which is insertion order
//     with removed vertices compacted out.
//
// Concurrency:
//   - Catalog reads under mu.RLock, mutations under mu.Lock.
//   - Sequences snapshot under the lock and yield without holding it.

package core

import (
	"fmt"
	"iter"
)

// AddVertex inserts v and assigns it the next free key (VertexCount()-1 afterwards).
//
// Errors:
//   - ErrDuplicateVertex if v is already a member; the graph is unchanged.
//
// Complexity: O(1) amortized for list storage, O(V) for matrix storage.
func (g *Graph[V, E]) AddVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[v]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
	}
	g.index[v] = len(g.verts)
	g.verts = append(g.verts, v)
	g.store.grow()

	return nil
}

// HasVertex reports whether v is a member of the graph.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// RemoveVertex deletes v together with every incident edge.
//
// Keys of vertices inserted after v shift down by one, so keys obtained before
// the call must not be reused afterwards.
//
// Errors:
//   - ErrVertexNotFound if v is not a member.
//
// Complexity: O(V + E) for list storage, O(V²) for matrix storage.
func (g *Graph[V, E]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k, ok := g.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	g.edgeCount -= g.incidentLocked(k)
	g.store.remove(k)

	delete(g.index, v)
	g.verts = append(g.verts[:k], g.verts[k+1:]...)
	for i := k; i < len(g.verts); i++ {
		g.index[g.verts[i]] = i
	}

	return nil
}

// incidentLocked counts the distinct edges touching key k.
func (g *Graph[V, E]) incidentLocked(k int) int {
	n := g.store.degree(k)
	if !g.cfg.directed {
		return n
	}
	for i := range g.verts {
		if i != k && g.store.get(i, k) != nil {
			n++
		}
	}

	return n
}

// Key returns the stable integer handle of v, valid until the next RemoveVertex.
//
// Errors:
//   - ErrVertexNotFound if v is not a member.
//
// Complexity: O(1).
func (g *Graph[V, E]) Key(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	k, ok := g.index[v]
	if !ok {
		return -1, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return k, nil
}

// VertexAt returns the vertex owning key k.
func (g *Graph[V, E]) VertexAt(k int) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if k < 0 || k >= len(g.verts) {
		var zero V
		return zero, false
	}

	return g.verts[k], true
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.verts)
}

// KeyedVertices returns a fresh slice where element i is the vertex with key i.
// Complexity: O(V).
func (g *Graph[V, E]) KeyedVertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]V, len(g.verts))
	copy(out, g.verts)

	return out
}

// Vertices returns a restartable sequence of all vertices in key order.
// Each range over the sequence observes the graph as of that range's start.
func (g *Graph[V, E]) Vertices() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range g.KeyedVertices() {
			if !yield(v) {
				return
			}
		}
	}
}
