// Package conquest is an in-memory strategy-simulation world built on
// generic graphs: territories linked by roads, actors linked by alliances,
// and the queries a game loop asks of them.
//
// 🚀 What is in conquest?
//
//	A thread-safe graph core and the engines that run on top of it:
//		• Core primitives: vertices with dense integer keys, weighted edges, list or matrix backing
//		• Traversals: BFS, DFS, every simple path
//		• Shortest paths: Dijkstra with path reconstruction
//		• Territory engine: cost projection, conquest cost, restricted worlds
//		• Alliance engine: proposals, public view, pairwise closure, best ally for a conquest
//		• World surface: sentinel-returning inserts and queries, YAML scenarios
//
// ✨ Conventions
//
//   - Every "what-if" query works on a derived copy; live graphs are never mutated by analysis
//   - Failed inserts leave the graph unchanged
//   - Territory owners are weak identifiers resolved through a lookup table
//   - Randomness is injected, so proposals can be made deterministic
//
// Packages:
//
//	core/       generic Graph[V, E], key index, clone and views
//	bfs/        breadth-first search
//	dfs/        depth-first search and all simple paths (explicit stack)
//	dijkstra/   O(V²) single-source shortest paths
//	world/      Territory, Road, Actor, Alliance records and the owner registry
//	territory/  conquest cost and candidate search over the road graph
//	alliance/   alliance engine over the actor graph
//	game/       the world Base: boundary operations, logging, metrics
//	scenario/   YAML world loading and validation
//	metrics/    Prometheus collectors
//
// Quick ASCII example:
//
//	    A(1)──3──B(2)──1──C(1)      D(1)
//
//	CheapestPath(A, C) = 4 via [A B C]; D is unreachable (-1).
package conquest
