// Package gridgraph generates territory maps from 2D integer grids.
//
// Every cell with value ≥ LandThreshold becomes a territory named "x,y"
// whose defense cost is the cell value; water cells are left out. Roads of
// RoadCost link neighboring land cells under four- or eight-connectivity
// (Conn4 or Conn8).
//
// On top of the road map:
//
//   - ConnectedComponents lists the islands (via BFS on the road graph)
//   - ExpandIsland finds the fewest water cells to reclaim to join two islands (0-1 BFS)
package gridgraph
