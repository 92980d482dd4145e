// Package core defines the mutable undirected Graph that every treewidth
// stage works on, together with the Edge and Matching value types and the
// sentinel errors of graph mutation.
//
// The Graph is guarded by a single sync.RWMutex (mu): queries take the read
// lock, mutations take the write lock. Derived graphs (Clone, Subgraph,
// Contract) are always fresh, fully owned structures; nothing is aliased
// between two Graph values.
//
// Errors:
//
//	ErrInvalidSize     - non-positive vertex count passed to AddVertexRange.
//	ErrInvalidVertex   - vertex id outside the current vertex set.
//	ErrEdgeNotFound    - removal of an edge that does not exist.
//	ErrInvalidMatching - matching is not vertex-disjoint or uses a non-edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a non-positive vertex count at construction.
	ErrInvalidSize = errors.New("core: vertex count must be positive")

	// ErrInvalidVertex indicates an operation referenced an id outside the vertex set.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrEdgeNotFound indicates removal of an edge that is not present.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidMatching indicates a matching whose pairs overlap or are not edges.
	ErrInvalidMatching = errors.New("core: invalid matching")
)

// Edge is an undirected edge in canonical form: U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {u, v}.
// Complexity: O(1).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint of e opposite to x.
// The result is undefined when x is not an endpoint of e.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// Matching is a set of pairwise vertex-disjoint edges.
// It is produced fresh for every contraction round and never mutated in place.
type Matching []Edge

// Covers reports whether v is an endpoint of some pair in m.
// Complexity: O(|m|).
func (m Matching) Covers(v int) bool {
	for _, e := range m {
		if e.U == v || e.V == v {
			return true
		}
	}

	return false
}

// Graph is a simple undirected graph over positive integer vertex ids.
//
// Invariants (held under mu):
//   - adj[u] contains v  ⇔  adj[v] contains u  ⇔  NewEdge(u,v) is in edges.
//   - no self-loops, no parallel edges.
//   - edgeIdx[e] is the position of e inside edges.
type Graph struct {
	mu sync.RWMutex // guards every field below

	// adj maps a vertex id to its open neighbourhood.
	adj map[int]map[int]struct{}

	// edges is the edge list; order is insertion order modulo swap-removals.
	edges []Edge

	// edgeIdx gives O(1) removal from edges.
	edgeIdx map[Edge]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj:     make(map[int]map[int]struct{}),
		edges:   make([]Edge, 0),
		edgeIdx: make(map[Edge]int),
	}
}

// newGraphSized pre-sizes the catalogs of a derived graph.
func newGraphSized(vertices, edges int) *Graph {
	return &Graph{
		adj:     make(map[int]map[int]struct{}, vertices),
		edges:   make([]Edge, 0, edges),
		edgeIdx: make(map[Edge]int, edges),
	}
}

// FromEdges builds a graph over vertices 1..n with the given vertex pairs.
// Self-loops are dropped and repeated pairs collapse, exactly as AddEdge does.
//
// Errors:
//   - ErrInvalidSize when n < 1.
//   - ErrInvalidVertex when a pair references a vertex outside 1..n.
//
// Complexity: O(n + len(pairs)).
func FromEdges(n int, pairs [][2]int) (*Graph, error) {
	g := NewGraph()
	if err := g.AddVertexRange(n); err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
