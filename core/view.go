// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating derived graphs (projections and restrictions).
//
// Every view is a fresh graph with the source's configuration. The source is
// never mutated. Vertex labels keep their identity; relative key order is
// preserved, keys are re-densified when vertices are filtered out.

package core

// MapEdges returns a graph over the same vertices where every edge payload and
// weight is replaced by fn(edge). Useful to project rich payloads onto the
// numeric weights consumed by path algorithms.
//
// Complexity: O(V + E). Concurrency: read lock on g only.
func MapEdges[V comparable, E, F any](g *Graph[V, E], fn func(e *Edge[V, E]) (F, float64)) *Graph[V, F] {
	return derive(g, nil, func(e *Edge[V, E]) (F, float64, bool) {
		p, w := fn(e)
		return p, w, true
	})
}

// UnitWeightView returns a copy of g where every edge weight is 1, turning
// weighted shortest paths into fewest-hop paths.
func UnitWeightView[V comparable, E any](g *Graph[V, E]) *Graph[V, E] {
	return MapEdges(g, func(e *Edge[V, E]) (E, float64) { return e.Payload, 1 })
}

// InducedSubgraph returns the subgraph induced by the vertices for which keep
// returns true: those vertices and every edge whose endpoints are both kept.
// keep is called under g's read lock and must not call back into g.
//
// Complexity: O(V + E). Concurrency: read lock on g only.
func InducedSubgraph[V comparable, E any](g *Graph[V, E], keep func(v V) bool) *Graph[V, E] {
	return derive(g, keep, func(e *Edge[V, E]) (E, float64, bool) {
		return e.Payload, e.Weight, true
	})
}

// derive builds a new graph from g's kept vertices and the edges fn accepts.
// A nil keep keeps every vertex.
func derive[V comparable, E, F any](
	g *Graph[V, E],
	keep func(V) bool,
	fn func(*Edge[V, E]) (F, float64, bool),
) *Graph[V, F] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := newGraph[V, F](g.cfg)
	for _, v := range g.verts {
		if keep != nil && !keep(v) {
			continue
		}
		out.index[v] = len(out.verts)
		out.verts = append(out.verts, v)
		out.store.grow()
	}

	for _, e := range g.edgesLocked() {
		ka, okA := out.index[e.From]
		kb, okB := out.index[e.To]
		if !okA || !okB {
			continue
		}
		p, w, ok := fn(e)
		if !ok {
			continue
		}
		ne := &Edge[V, F]{From: e.From, To: e.To, Payload: p, Weight: w}
		out.store.put(ka, kb, ne)
		if !out.cfg.directed && ka != kb {
			out.store.put(kb, ka, ne)
		}
		out.edgeCount++
	}

	return out
}
