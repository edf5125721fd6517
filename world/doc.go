// Package world holds the value records of a strategy-simulation world and
// the graph shapes that connect them.
//
//   - Territory: a vertex of the road graph, with a defense Cost and a weak
//     Owner identifier.
//   - Road: the payload of a road-graph edge; the edge weight equals Road.Cost.
//   - Actor: a vertex of the alliance graph, with Strength and the territories
//     it holds (back-references, never ownership).
//   - Alliance: the payload of an alliance-graph edge; the edge weight equals
//     Alliance.Power.
//
// Territory.Owner is resolved through an Owners table, so removing an actor
// leaves a dangling identifier that simply resolves to nothing.
package world
