// Package core provides the mutable undirected Graph used by every treewidth
// stage: simplicial elimination removes vertices from it, matching
// contraction derives smaller graphs from it, and decomposition validation
// checks bags against it.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are positive integers (1-indexed, like the graphs fed in by
//     generators and loaders).
//   - Edges are undirected and simple: AddEdge(v,v) is silently dropped,
//     repeated AddEdge(u,v) is idempotent.
//   - Adjacency sets give O(1) HasEdge and Degree; an edge list with an index
//     gives O(1) RemoveEdge.
//   - One sync.RWMutex guards the whole structure.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertexRange(n int) error      // vertices 1..n; ErrInvalidSize if n < 1
//	AddVertex(v int) error           // O(1)
//	RemoveVertex(v int) error        // O(deg(v)); other ids stay stable
//	HasVertex(v int) bool            // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(1); ErrInvalidVertex on unknown endpoint
//	RemoveEdge(u, v int) error       // O(1); ErrEdgeNotFound if absent
//	HasEdge(u, v int) bool           // O(1)
//
//	// Queries
//	Vertices() []int                 // sorted
//	Edges() []Edge                   // sorted by (U,V)
//	Neighbors(v int) ([]int, error)  // sorted
//	Degree(v int) (int, error)       // O(1)
//	VertexDegrees() map[int]int      // O(V)
//	IsClique(vs []int) bool          // O(k²)
//
//	// Derived graphs (fresh, renumbered densely from 1)
//	Clone() *Graph
//	Subgraph(vs []int) (*Graph, map[int]int, error)
//	Contract(m Matching) (*Graph, map[int]int, error)
//
// Errors:
//
//	ErrInvalidSize     – non-positive vertex count
//	ErrInvalidVertex   – id outside the current vertex set
//	ErrEdgeNotFound    – removing a missing edge
//	ErrInvalidMatching – overlapping pairs or non-edges passed to Contract
package core
