// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// The implementation is the O(V²) selection variant: no priority queue, the
// next vertex is the unvisited one with minimal finite tentative distance.
// Distances and predecessors live in arrays indexed by vertex key.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Edges with weight ≥ InfEdgeThreshold are impassable walls.
//   - A relaxation whose result exceeds MaxDistance is dropped.
//   - Relaxation uses a strict comparison, so the first-found predecessor wins ties.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/conquest/core"
)

// Dijkstra computes shortest distances from src to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain src (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra[V comparable, E any](g *core.Graph[V, E], src V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, src)
	}
	for e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner[V, E]{g: g, options: cfg}
	r.init(src)
	r.process()

	return r.res, nil
}

// ShortestPath returns the distance and the path src..dst. When dst cannot
// be reached the result is (Unreachable, nil, nil).
func ShortestPath[V comparable, E any](g *core.Graph[V, E], src, dst V, opts ...Option) (float64, []V, error) {
	if g == nil {
		return Unreachable, nil, ErrNilGraph
	}
	if !g.HasVertex(dst) {
		return Unreachable, nil, fmt.Errorf("%w: destination %v", ErrVertexNotFound, dst)
	}
	res, err := Dijkstra(g, src, opts...)
	if err != nil {
		return Unreachable, nil, err
	}
	d, _ := res.DistanceTo(dst)
	if d == Unreachable {
		return Unreachable, nil, nil
	}
	path, _ := res.PathTo(dst)

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, E any] struct {
	g       *core.Graph[V, E]
	options Options
	visited []bool
	res     *Result[V]
}

// init sets every distance to +Inf and every predecessor to -1, then the
// source distance to 0.
func (r *runner[V, E]) init(src V) {
	verts := r.g.KeyedVertices()
	n := len(verts)
	index := make(map[V]int, n)
	for k, v := range verts {
		index[v] = k
	}
	r.res = &Result[V]{
		Source: src,
		Dist:   make([]float64, n),
		Prev:   make([]int, n),
		verts:  verts,
		index:  index,
	}
	for k := range verts {
		r.res.Dist[k] = math.Inf(1)
		r.res.Prev[k] = -1
	}
	r.visited = make([]bool, n)
	r.res.Dist[index[src]] = 0
}

// process repeatedly selects the closest unvisited vertex, finalizes it and
// relaxes its outgoing edges. It stops when no unvisited vertex has a finite
// distance.
func (r *runner[V, E]) process() {
	for {
		u := -1
		best := math.Inf(1)
		for k, d := range r.res.Dist {
			if !r.visited[k] && d < best {
				u, best = k, d
			}
		}
		if u == -1 {
			return
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax applies dist[v] > dist[u] + w(u,v) to every edge leaving u.
func (r *runner[V, E]) relax(u int) {
	dist := r.res.Dist
	nbrs, edges, _ := r.g.Adjacent(r.res.verts[u])
	for i, nbr := range nbrs {
		w := edges[i].Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v, ok := r.res.index[nbr]
		if !ok || r.visited[v] {
			continue
		}
		cand := dist[u] + w
		if cand > r.options.MaxDistance {
			continue
		}
		if dist[v] > cand {
			dist[v] = cand
			r.res.Prev[v] = u
		}
	}
}
