// Package core provides the generic in-memory Graph used by every other
// package of conquest: territories and roads, actors and alliances are all
// stored as core.Graph instances.
//
// The Graph G = (V,E) is parameterized by a comparable vertex label V and an
// edge payload E; every edge also carries a float64 weight.
//
//   - Directed vs. undirected edges (WithDirected)
//   - Adjacency-list (default) vs. adjacency-matrix storage (WithDenseStorage)
//   - Self-loops (WithLoops)
//   - Simple graphs only: one edge per endpoint pair
//
// Vertex keys:
//
//	Each vertex owns an integer key. Keys form a bijection onto
//	[0, VertexCount()) at every moment: AddVertex assigns the next key,
//	RemoveVertex compacts the keys above the removed one. Traversal
//	algorithms size visited/distance arrays with VertexCount() and index
//	them with Key(v); they must re-read keys after any removal.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) error                 // ErrDuplicateVertex
//	RemoveVertex(v V) error              // ErrVertexNotFound, drops incident edges
//	HasVertex(v V) bool
//	Key(v V) (int, error)
//	VertexAt(k int) (V, bool)
//
//	// Edge lifecycle
//	AddEdge(a, b V, payload E, w float64) error  // ErrVertexNotFound, ErrDuplicateEdge, ErrLoopNotAllowed
//	RemoveEdge(a, b V) error
//	Edge(a, b V) (*Edge[V,E], bool)
//
//	// Sequences (lazy, restartable, iter.Seq)
//	Vertices(), AdjVertices(v), OutgoingEdges(v), Edges()
//
//	// Cloning & views
//	Clone(), CloneEmpty(), MapEdges(g, fn), UnitWeightView(g), InducedSubgraph(g, keep)
//
// Every insert validates against current state before mutating; a failed
// call leaves the graph unchanged.
package core
