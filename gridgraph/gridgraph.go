// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/world"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadRoadCost.
// Complexity: O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.RoadCost < 0 || math.IsNaN(opts.RoadCost) {
		return nil, ErrBadRoadCost
	}
	cells := make([][]int, h)
	for y := range h {
		cells[y] = append([]int(nil), values[y]...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		RoadCost:        opts.RoadCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) offsets of the configured connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

func (gg *GridGraph) cell(x, y int) Cell { return Cell{X: x, Y: y, Value: gg.CellValues[y][x]} }

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Cells returns the land cells in row-major order.
func (gg *GridGraph) Cells() []Cell {
	var out []Cell
	for y := range gg.Height {
		for x := range gg.Width {
			if gg.IsLand(x, y) {
				out = append(out, gg.cell(x, y))
			}
		}
	}

	return out
}

// Links returns every pair of neighboring land cells once, ordered by the
// row-major index of the first cell, then by neighbor offset.
func (gg *GridGraph) Links() [][2]Cell {
	var out [][2]Cell
	for y := range gg.Height {
		for x := range gg.Width {
			if !gg.IsLand(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) || gg.index(nx, ny) < u {
					continue
				}
				out = append(out, [2]Cell{gg.cell(x, y), gg.cell(nx, ny)})
			}
		}
	}

	return out
}

// ToRoadGraph builds the road graph of the map: one territory per land cell
// (named Cell.Name, Cost = value) and one road of RoadCost per link. The
// second result maps every land cell's row-major index to its territory;
// water indexes hold nil.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToRoadGraph(opts ...core.GraphOption) (*world.RoadGraph, []*world.Territory) {
	roads := world.NewRoadGraph(opts...)
	byIndex := make([]*world.Territory, gg.Width*gg.Height)
	for _, c := range gg.Cells() {
		t := &world.Territory{Name: c.Name(), Cost: float64(c.Value)}
		byIndex[gg.index(c.X, c.Y)] = t
		_ = roads.AddVertex(t)
	}
	for _, l := range gg.Links() {
		a, b := byIndex[gg.index(l[0].X, l[0].Y)], byIndex[gg.index(l[1].X, l[1].Y)]
		_ = roads.AddEdge(a, b, &world.Road{Cost: gg.RoadCost, A: a, B: b}, gg.RoadCost)
	}

	return roads, byIndex
}
