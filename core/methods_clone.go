// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Identity:
//   - Clones share vertex labels (so pointer labels keep their identity) but own
//     fresh key indexes, fresh storage and fresh Edge records.
//
// Concurrency:
//   - Read lock on the source for the whole snapshot; the clone is unshared until returned.

package core

// CloneEmpty returns a graph with identical configuration and vertices
// (same keys) but no edges.
// Complexity: O(V) for list storage, O(V²) for matrix storage.
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	return derive(g, nil, func(*Edge[V, E]) (E, float64, bool) {
		var zero E
		return zero, 0, false
	})
}

// Clone returns a deep, independent copy of the graph: vertices keep their
// keys, every edge is copied into a new record. Mutating either graph never
// affects the other.
// Complexity: O(V + E) for list storage, O(V²) for matrix storage.
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	return derive(g, nil, func(e *Edge[V, E]) (E, float64, bool) {
		return e.Payload, e.Weight, true
	})
}

// Clear removes every vertex and edge while preserving configuration flags.
func (g *Graph[V, E]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	fresh := newGraph[V, E](g.cfg)
	g.verts = nil
	g.index = fresh.index
	g.store = fresh.store
	g.edgeCount = 0
}
