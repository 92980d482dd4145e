package decomp

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// FromEliminationOrder plays the elimination game on a copy of g's adjacency.
// Eliminating v creates the bag {v} ∪ N⁺(v), where N⁺(v) are the neighbours
// of v not yet eliminated, and then turns N⁺(v) into a clique (fill-in).
// The node of v hangs below the node of its earliest-eliminated neighbour in
// N⁺(v); nodes with empty N⁺ are roots, and all roots are finally linked
// under the first one. The width equals the width of the ordering.
//
// Node i+1 holds the bag of order[i].
//
// Errors: ErrInvalidOrder when order is not a permutation of g.Vertices().
//
// Complexity: O(Σ |N⁺(v)|²) for the fill-in.
func FromEliminationOrder(g *core.Graph, order []int) (*TreeDecomposition, error) {
	adj := make(map[int]map[int]struct{}, g.VertexCount())
	for v, nbrs := range g.AdjacencyList() {
		set := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adj[v] = set
	}
	if len(order) != len(adj) {
		return nil, fmt.Errorf("FromEliminationOrder: %d ids for %d vertices: %w", len(order), len(adj), ErrInvalidOrder)
	}
	pos := make(map[int]int, len(order))
	for i, v := range order {
		if _, ok := adj[v]; !ok {
			return nil, fmt.Errorf("FromEliminationOrder: unknown vertex %d: %w", v, ErrInvalidOrder)
		}
		if _, dup := pos[v]; dup {
			return nil, fmt.Errorf("FromEliminationOrder: vertex %d repeated: %w", v, ErrInvalidOrder)
		}
		pos[v] = i
	}

	td := New()
	parents := make([]int, len(order))
	for i, v := range order {
		later := make([]int, 0, len(adj[v]))
		for u := range adj[v] {
			later = append(later, u)
		}
		td.addNode(append(later, v), 0)

		first := -1
		for _, u := range later {
			if first < 0 || pos[u] < pos[first] {
				first = u
			}
			delete(adj[u], v)
			for _, w := range later {
				if w != u {
					adj[u][w] = struct{}{}
				}
			}
		}
		delete(adj, v)
		if first >= 0 {
			parents[i] = pos[first] + 1
		}
	}
	for i, p := range parents {
		td.setParent(i+1, p)
	}
	td.linkRoots()

	return td, nil
}

// Trivial returns one singleton bag per vertex of g, all linked under the
// first. It is a valid decomposition only for edgeless graphs.
func Trivial(g *core.Graph) *TreeDecomposition {
	td := New()
	for _, v := range g.Vertices() {
		td.addNode([]int{v}, 0)
	}
	td.linkRoots()

	return td
}
