// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is |E|.
	EdgeCount int

	// MaxDegree is the largest vertex degree (0 for an empty graph).
	MaxDegree int

	// IsolatedCount is the number of degree-0 vertices.
	IsolatedCount int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - Use Stats() in logs; it is cheaper than Vertices()/Edges() which sort.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adj),
		EdgeCount:   len(g.edges),
	}
	for _, nbrs := range g.adj {
		d := len(nbrs)
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
