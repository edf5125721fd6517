// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/conquest/dijkstra"
	"github.com/katalvlaran/conquest/gridgraph"
)

// ExampleGridGraph_ToRoadGraph turns a small terrain grid into a road map
// and routes around the lake.
func ExampleGridGraph_ToRoadGraph() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{2, 1, 1},
	}, gridgraph.DefaultGridOptions())

	roads, byIndex := gg.ToRoadGraph()
	fmt.Println(roads.VertexCount(), roads.EdgeCount())

	d, route, _ := dijkstra.ShortestPath(roads, byIndex[0], byIndex[8])
	fmt.Println(d, route)
	// Output:
	// 8 8
	// 4 [0,0 1,0 2,0 2,1 2,2]
}
