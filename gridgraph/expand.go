// SPDX-License-Identifier: MIT

package gridgraph

import "slices"

// ExpandIsland finds the cheapest chain of water cells to reclaim so that
// component srcComp touches component dstComp (indexes as returned by
// ConnectedComponents). Each reclaimed water cell costs 1.
// Returns the cell path, including the start and end land cells, and the
// number of water cells on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every srcComp cell:
//     • stepping onto land costs 0
//     • stepping onto water costs 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct the path from predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]Cell, int, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	n := gg.Width * gg.Height
	isDst := make([]bool, n)
	for _, c := range comps[dstComp] {
		isDst[gg.index(c.X, c.Y)] = true
	}
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// deque as two stacks: front holds cost-0 pushes, back cost-1 pushes
	var front, back []int
	for _, c := range comps[srcComp] {
		i := gg.index(c.X, c.Y)
		dist[i] = 0
		back = append(back, i)
	}
	pop := func() int {
		if len(front) > 0 {
			u := front[len(front)-1]
			front = front[:len(front)-1]
			return u
		}
		u := back[0]
		back = back[1:]
		return u
	}

	target := -1
	for len(front)+len(back) > 0 {
		u := pop()
		if isDst[u] {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 1
			if gg.IsLand(vx, vy) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					front = append(front, v)
				} else {
					back = append(back, v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var path []Cell
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.cell(gg.Coordinate(at)))
	}
	slices.Reverse(path)

	return path, dist[target], nil
}
