// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/conquest/core"
)

// queueItem pairs a vertex with its key and BFS depth.
type queueItem[V comparable] struct {
	v     V
	key   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E any] struct {
	graph    *core.Graph[V, E]
	maxDepth int
	onVisit  func(V, int) error
	filter   func(V, V) bool
	queue    []queueItem[V]
	visited  []bool
	res      *Result[V]
}

// BFS runs breadth-first search on g starting from start.
// The visited set is a []bool sized VertexCount and indexed by vertex key,
// so g must not be mutated while BFS runs.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or a wrapped OnVisit error. On a hook
// error the partial result gathered so far is returned alongside it.
func BFS[V comparable, E any](g *core.Graph[V, E], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	w, err := newWalker(g, o)
	if err != nil {
		return nil, err
	}

	k, err := g.Key(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	w.enqueue(queueItem[V]{v: start, key: k}, nil)

	return w.res, w.loop()
}

// newWalker resolves typed callbacks and allocates per-run state.
func newWalker[V comparable, E any](g *core.Graph[V, E], o Options) (*walker[V, E], error) {
	n := g.VertexCount()
	w := &walker[V, E]{
		graph:    g,
		maxDepth: o.MaxDepth,
		onVisit:  func(V, int) error { return nil },
		filter:   func(V, V) bool { return true },
		queue:    make([]queueItem[V], 0, n),
		visited:  make([]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(V, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, o.onVisit)
		}
		w.onVisit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(V, V) bool)
		if !ok {
			return nil, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filter)
		}
		w.filter = fn
	}

	return w, nil
}

// enqueue marks item visited, records its depth and parent, and queues it.
func (w *walker[V, E]) enqueue(item queueItem[V], parent *V) {
	w.visited[item.key] = true
	w.res.Depth[item.v] = item.depth
	if parent != nil {
		w.res.Parent[item.v] = *parent
	}
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty or a hook error.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.onVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every unseen
// neighbor in the graph's adjacency order.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if w.maxDepth > 0 && next > w.maxDepth {
		return
	}
	for nbr := range w.graph.AdjVertices(item.v) {
		if !w.filter(item.v, nbr) {
			continue
		}
		k, err := w.graph.Key(nbr)
		if err != nil || w.visited[k] {
			continue
		}
		parent := item.v
		w.enqueue(queueItem[V]{v: nbr, key: k, depth: next}, &parent)
	}
}
