// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search on core.Graph with an explicit
// frame stack, so traversal depth is bounded by memory rather than the
// goroutine stack.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/conquest/core"
)

// frame is one entry of the explicit DFS stack: a discovered vertex, its
// neighbor snapshot, and the cursor into that snapshot.
type frame[V comparable] struct {
	v     V
	depth int
	nbrs  []V
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[V comparable, E any] struct {
	graph   *core.Graph[V, E]
	opts    Options
	hooks   hooks[V]
	visited []bool
	stack   []frame[V]
	res     *Result[V]
}

// DFS performs pre-order depth-first search on g from start. Neighbors are
// explored in core adjacency order, which yields the same visit order as the
// recursive formulation.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a
// wrapped OnVisit error together with the partial result.
func DFS[V comparable, E any](g *core.Graph[V, E], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, h, err := resolve[V](opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &dfsWalker[V, E]{
		graph:   g,
		opts:    o,
		hooks:   h,
		visited: make([]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	return w.res, w.run(start)
}

// run drives the explicit stack until it empties or a hook fails.
func (w *dfsWalker[V, E]) run(start V) error {
	if err := w.discover(start, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		k, err := w.graph.Key(nbr)
		if err != nil || w.visited[k] {
			continue
		}
		if !w.hooks.filter(nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		parent, depth := top.v, top.depth+1
		w.res.Parent[nbr] = parent
		if err := w.discover(nbr, depth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, records it, runs the hook, and pushes its frame
// unless MaxDepth stops further descent.
func (w *dfsWalker[V, E]) discover(v V, depth int) error {
	k, _ := w.graph.Key(v)
	w.visited[k] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if err := w.hooks.onVisit(v, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
	}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}
	nbrs, _, _ := w.graph.Adjacent(v)
	w.stack = append(w.stack, frame[V]{v: v, depth: depth, nbrs: nbrs})

	return nil
}
