// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep, fully independent copy of the graph.
// The edge list keeps its current order, so a greedy scan over the clone
// visits edges exactly as it would over the original.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := newGraphSized(len(g.adj), len(g.edges))
	for v, nbrs := range g.adj {
		inner := make(map[int]struct{}, len(nbrs))
		for u := range nbrs {
			inner[u] = struct{}{}
		}
		clone.adj[v] = inner
	}
	clone.edges = append(clone.edges, g.edges...)
	for e, i := range g.edgeIdx {
		clone.edgeIdx[e] = i
	}

	return clone
}

// Clear removes every vertex and edge.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = make(map[int]map[int]struct{})
	g.edges = make([]Edge, 0)
	g.edgeIdx = make(map[Edge]int)
}
