// Package dfs implements depth-first traversal and exhaustive simple-path
// enumeration on a core.Graph, for directed and undirected graphs.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, recording vertices in pre-order. Supports:
//   - Pre-order hook (OnVisit)
//   - Depth limiting
//   - Neighbor filtering with a SkippedNeighbors diagnostic
//   - AllPaths: enumerates every simple path between two vertices in
//     discovery order, with an optional cap on the number of paths.
//
// Both walks use an explicit frame stack instead of recursion. Each frame
// holds a neighbor snapshot and a cursor, which reproduces the recursive
// visit order exactly. AllPaths marks a vertex when its frame is pushed and
// unmarks it when the frame is popped.
//
// Key Types:
//
//   - Option: functional options shared by DFS and AllPaths
//   - Options: MaxDepth, MaxPaths
//   - Result: pre-order, Depth, Parent, SkippedNeighbors
//
// Complexity:
//
//   - DFS:       Time O(V+E), Memory O(V+E) for the neighbor snapshots
//   - AllPaths:  Time exponential in the worst case, Memory O(V) plus output
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   start vertex not in graph
//   - ErrTargetVertexNotFound  AllPaths destination not in graph
//   - ErrOptionViolation       bad MaxPaths or mistyped callback
//   - hook errors              propagated from OnVisit
package dfs
