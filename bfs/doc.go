// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Edge weights are ignored; directed graphs are followed From→To only.
//
// Determinism
//
//	Neighbors are enqueued in core adjacency order (insertion order for list
//	storage, key order for matrix storage), so the visit sequence is fully
//	reproducible for a given graph.
//
// Visited discipline
//
//	The visited set is a []bool of length VertexCount indexed by vertex key.
//	Keys are only valid until the next RemoveVertex, so the graph must not be
//	mutated during a traversal.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for list storage, O(V²) for matrix storage
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	    bfs.WithOnVisit(func(v string, depth int) error { return nil }),
//	)
//	path, err := res.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative MaxDepth or a callback typed for another vertex type.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
