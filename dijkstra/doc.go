// Package dijkstra implements single-source shortest paths for graphs with
// non-negative edge weights.
//
// Algorithm:
//
//	dist[*] = +Inf, dist[src] = 0, prev[*] = -1
//	repeat:
//	    u = unvisited vertex with minimal finite dist; stop if none
//	    visited[u] = true
//	    for each edge u→v: if dist[v] > dist[u] + w(u,v) { dist[v] = …; prev[v] = u }
//
// The selection step is a linear scan, which keeps the implementation free
// of a priority queue and is optimal for the dense worlds it is used on.
// Arrays are indexed by core vertex keys, so the graph must not be mutated
// during a run.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
//
// Functions:
//
//   - Dijkstra(g, src, opts...) (*Result, error): full distance/predecessor arrays
//   - ShortestPath(g, src, dst, opts...) (float64, []V, error): one pair,
//     (Unreachable, nil, nil) when dst cannot be reached
//   - Result.DistanceTo(v), Result.PathTo(v)
//
// Options:
//
//   - WithMaxDistance(x):      distances above x are treated as unreachable (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph        nil graph pointer.
//   - ErrVertexNotFound  source or destination not in the graph.
//   - ErrNegativeWeight  a negative edge weight was found by the upfront scan.
//   - ErrBadMaxDistance, ErrBadInfThreshold for invalid options.
package dijkstra
