// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertexRange initializes vertices 1..n. Vertices that already exist are
// left untouched, so calling it twice with the same n is a no-op.
//
// Errors:
//   - ErrInvalidSize: if n < 1.
//
// Complexity:
//   - Time O(n), Space O(n).
func (g *Graph) AddVertexRange(n int) error {
	if n < 1 {
		return fmt.Errorf("AddVertexRange(%d): %w", n, ErrInvalidSize)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for v := 1; v <= n; v++ {
		if _, ok := g.adj[v]; !ok {
			g.adj[v] = make(map[int]struct{})
		}
	}

	return nil
}

// AddVertex inserts a single vertex id (idempotent).
//
// Errors:
//   - ErrInvalidVertex: if v < 1 (ids are positive).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v int) error {
	if v < 1 {
		return fmt.Errorf("AddVertex(%d): %w", v, ErrInvalidVertex)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(v)

	return nil
}

// addVertexLocked inserts v; caller holds the write lock.
func (g *Graph) addVertexLocked(v int) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]struct{})
	}
}

// HasVertex reports whether v is in the vertex set.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every incident edge. The ids of all other
// vertices are unchanged; renumbering only ever happens in derived graphs.
//
// Errors:
//   - ErrInvalidVertex: if v is absent.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrInvalidVertex)
	}
	for u := range nbrs {
		g.removeEdgeLocked(NewEdge(u, v))
	}
	delete(g.adj, v)

	return nil
}

// Vertices returns all vertex ids sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesLocked()
}

// verticesLocked is Vertices without locking.
func (g *Graph) verticesLocked() []int {
	out := make([]int, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Degree returns the number of neighbours of v.
//
// Errors:
//   - ErrInvalidVertex: if v is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrInvalidVertex)
	}

	return len(nbrs), nil
}

// VertexDegrees returns a fresh map vertex → degree.
// Complexity: O(V).
func (g *Graph) VertexDegrees() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = len(nbrs)
	}

	return out
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}
