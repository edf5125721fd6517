// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: exhaustive simple-path enumeration by iterative backtracking.
//
// The stack of frames is the current path. A vertex is marked when its frame
// is pushed and unmarked when its frame is popped, so sibling branches see
// exactly the vertices of their own prefix as used.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/conquest/core"
)

// AllPaths returns every simple path from src to dst in discovery order.
// Each path is a fresh slice ordered src..dst and has at least one edge, so
// src == dst yields no paths. WithFilterNeighbor prunes vertices, WithMaxDepth
// bounds the path length in edges, and WithMaxPaths stops early.
//
// Complexity: exponential in the worst case; memory O(V) besides the output.
func AllPaths[V comparable, E any](g *core.Graph[V, E], src, dst V, opts ...Option) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, h, err := resolve[V](opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, src)
	}
	dk, err := g.Key(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTargetVertexNotFound, dst)
	}

	var paths [][]V
	if src == dst {
		return paths, nil
	}

	onPath := make([]bool, g.VertexCount())
	var stack []frame[V]
	push := func(v V, depth int) {
		k, _ := g.Key(v)
		onPath[k] = true
		nbrs, _, _ := g.Adjacent(v)
		stack = append(stack, frame[V]{v: v, depth: depth, nbrs: nbrs})
	}
	push(src, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			k, _ := g.Key(top.v)
			onPath[k] = false
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++

		k, err := g.Key(nbr)
		if err != nil || onPath[k] || !h.filter(nbr) {
			continue
		}
		depth := top.depth + 1
		if o.MaxDepth >= 0 && depth > o.MaxDepth {
			continue
		}
		if k == dk {
			path := make([]V, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.v)
			}
			paths = append(paths, append(path, nbr))
			if o.MaxPaths > 0 && len(paths) >= o.MaxPaths {
				break
			}
			continue
		}
		push(nbr, depth)
	}

	return paths, nil
}
