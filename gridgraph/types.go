// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a single grid cell. On land cells Value is the territory's
// defense cost.
type Cell struct {
	X, Y  int
	Value int
}

// Name is the territory name of the cell: "x,y".
func (c Cell) Name() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// GridOptions contains tunable parameters for map generation.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// RoadCost is the cost of every road between neighboring land cells.
	RoadCost float64
}

// DefaultGridOptions returns LandThreshold=1, Conn=Conn4, RoadCost=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		RoadCost:      1,
	}
}

// GridGraph treats a 2D integer grid as a territory map. It is immutable
// once built. CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	RoadCost        float64
	neighborOffsets [][2]int
}
