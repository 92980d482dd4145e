// File: methods_adjacent.go
// Role: Neighbourhood queries used by the reductions and the elimination game.
// Determinism:
//   - Neighbors() and AdjacencyList() values are sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the open neighbourhood of v, sorted ascending.
//
// Errors:
//   - ErrInvalidVertex: if v is absent.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrInvalidVertex)
	}

	return sortedKeys(nbrs), nil
}

// IsClique reports whether every unordered pair of vs is an edge.
// Ids that are not vertices make the answer false unless len(vs) < 2.
//
// Complexity: O(k²) for k = len(vs).
func (g *Graph) IsClique(vs []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !g.hasEdgeLocked(vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}

// AdjacencyList returns a fresh vertex → sorted neighbours map.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = sortedKeys(nbrs)
	}

	return out
}

// sortedKeys returns the members of a set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
