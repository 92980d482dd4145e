// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U, V) asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge records the undirected edge {u, v}.
//
// Behavior highlights:
//   - u == v is a silent no-op (self-loops are dropped, not rejected).
//   - Idempotent: adding an existing edge changes nothing.
//
// Errors:
//   - ErrInvalidVertex: if either endpoint is not in the vertex set.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrInvalidVertex)
	}
	if _, ok := g.adj[v]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrInvalidVertex)
	}
	g.addEdgeLocked(u, v)

	return nil
}

// addEdgeLocked links two existing, distinct vertices; caller holds the write lock.
func (g *Graph) addEdgeLocked(u, v int) {
	e := NewEdge(u, v)
	if _, dup := g.edgeIdx[e]; dup {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeIdx[e] = len(g.edges)
	g.edges = append(g.edges, e)
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrEdgeNotFound: if the edge is absent (including unknown endpoints).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.removeEdgeLocked(NewEdge(u, v)) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return nil
}

// removeEdgeLocked unlinks e and swap-removes it from the edge list.
// It reports false when e is absent.
func (g *Graph) removeEdgeLocked(e Edge) bool {
	i, ok := g.edgeIdx[e]
	if !ok {
		return false
	}
	last := len(g.edges) - 1
	if i != last {
		moved := g.edges[last]
		g.edges[i] = moved
		g.edgeIdx[moved] = i
	}
	g.edges = g.edges[:last]
	delete(g.edgeIdx, e)
	delete(g.adj[e.U], e.V)
	delete(g.adj[e.V], e.U)

	return true
}

// HasEdge reports whether {u, v} is an edge. Unknown ids yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

// hasEdgeLocked is HasEdge without locking.
func (g *Graph) hasEdgeLocked(u, v int) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Edges returns a copy of the edge list sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// edgesLocked is Edges without locking.
func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
