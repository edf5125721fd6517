// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/conquest/bfs"
	"github.com/katalvlaran/conquest/world"
)

// ConnectedComponents finds the islands of the map: maximal groups of land
// cells linked by roads under gg.Conn. Components are ordered by their first
// row-major cell; cells inside a component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	roads, byIndex := gg.ToRoadGraph()
	at := make(map[*world.Territory]int, roads.VertexCount())
	for i, t := range byIndex {
		if t != nil {
			at[t] = i
		}
	}

	seen := make([]bool, len(byIndex))
	var comps [][]Cell
	for i, t := range byIndex {
		if t == nil || seen[i] {
			continue
		}
		// t is a vertex of roads, BFS cannot fail
		res, _ := bfs.BFS(roads, t)
		comp := make([]Cell, 0, len(res.Order))
		for _, v := range res.Order {
			j := at[v]
			seen[j] = true
			comp = append(comp, gg.cell(gg.Coordinate(j)))
		}
		comps = append(comps, comp)
	}

	return comps
}
