package reduce

import (
	"sort"

	"github.com/katalvlaran/treewidth/core"
)

// Elimination records one removed simplicial vertex.
type Elimination struct {
	// Vertex is the removed vertex id.
	Vertex int

	// Bag is the closed neighbourhood of Vertex at removal time, sorted.
	Bag []int
}

// IsSimplicialVertex reports whether the neighbourhood of v is a clique.
// Absent vertices are not simplicial.
//
// Complexity: O(d²) for d = deg(v).
func IsSimplicialVertex(g *core.Graph, v int) bool {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return false
	}

	return g.IsClique(nbrs)
}

// FindSimplicialVertices returns every simplicial vertex of g, sorted.
// Vertices are tested in ascending degree order; each test stops at the
// first non-adjacent neighbour pair. A cycle of length ≥ 4 yields none.
//
// Complexity: O(V·d²) worst case for max degree d.
func FindSimplicialVertices(g *core.Graph) []int {
	out := make([]int, 0)
	for _, v := range byDegree(g) {
		if IsSimplicialVertex(g, v) {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

// IsSimplicial reports whether every vertex of g is simplicial, i.e. g is a
// disjoint union of cliques. The empty graph is simplicial.
func IsSimplicial(g *core.Graph) bool {
	for _, v := range byDegree(g) {
		if !IsSimplicialVertex(g, v) {
			return false
		}
	}

	return true
}

// EliminateSimplicial repeatedly removes a simplicial vertex from g until none
// remains or g is empty, and returns the removals in order.
//
// g is mutated; pass a clone to keep the original.
//
// Implementation:
//   - Stage 1: seed a worklist with FindSimplicialVertices.
//   - Stage 2: pop v, record {v} ∪ N(v), remove v.
//   - Stage 3: re-test only the former neighbours of v. Removing a vertex
//     shrinks neighbourhoods, so a simplicial vertex stays simplicial and
//     only neighbours of the removed vertex can become simplicial.
//
// Complexity: O(V·d²) worst case.
func EliminateSimplicial(g *core.Graph) []Elimination {
	queue := FindSimplicialVertices(g)
	queued := make(map[int]bool, len(queue))
	for _, v := range queue {
		queued[v] = true
	}

	var out []Elimination
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		bag := make([]int, 0, len(nbrs)+1)
		bag = append(bag, nbrs...)
		bag = append(bag, v)
		sort.Ints(bag)
		if err = g.RemoveVertex(v); err != nil {
			continue
		}
		out = append(out, Elimination{Vertex: v, Bag: bag})

		for _, u := range nbrs {
			if !queued[u] && IsSimplicialVertex(g, u) {
				queued[u] = true
				queue = append(queue, u)
			}
		}
	}

	return out
}

// EliminationWidth returns max(|Bag|) - 1 over elims, or 0 when elims is empty.
// Because simplicial elimination is lossless it is a lower bound on the
// treewidth of the graph the eliminations were taken from.
func EliminationWidth(elims []Elimination) int {
	w := 0
	for _, e := range elims {
		if len(e.Bag)-1 > w {
			w = len(e.Bag) - 1
		}
	}

	return w
}

// byDegree returns the vertices of g in ascending (degree, id) order.
func byDegree(g *core.Graph) []int {
	degs := g.VertexDegrees()
	vs := make([]int, 0, len(degs))
	for v := range degs {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		if degs[vs[i]] != degs[vs[j]] {
			return degs[vs[i]] < degs[vs[j]]
		}
		return vs[i] < vs[j]
	})

	return vs
}
