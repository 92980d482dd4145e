package solver

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/treewidth/core"
)

// MinDegree eliminates a vertex of minimum current degree at every step,
// adding fill-in edges between its remaining neighbours. Ties go to the
// smaller id. It is an upper-bound heuristic.
type MinDegree struct{}

// Name implements Solver.
func (MinDegree) Name() string { return NameMinDegree }

// Exact implements Solver.
func (MinDegree) Exact() bool { return false }

type degreeKey struct{ deg, v int }

func compareDegreeKeys(a, b interface{}) int {
	x, y := a.(degreeKey), b.(degreeKey)
	switch {
	case x.deg != y.deg:
		return x.deg - y.deg
	default:
		return x.v - y.v
	}
}

// Order returns the min-degree elimination ordering of g.
// The (degree, vertex) queue is a red-black tree so that degree changes are
// a Remove plus a Put.
//
// Complexity: O(Σ d² · log V) including fill-in.
func (MinDegree) Order(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("MinDegree.Order: %w", ErrNilGraph)
	}

	adj := make(map[int]map[int]struct{}, g.VertexCount())
	queue := redblacktree.NewWith(compareDegreeKeys)
	for v, nbrs := range g.AdjacencyList() {
		set := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adj[v] = set
		queue.Put(degreeKey{deg: len(set), v: v}, nil)
	}

	order := make([]int, 0, len(adj))
	for !queue.Empty() {
		k := queue.Left().Key.(degreeKey)
		queue.Remove(k)
		v := k.v
		order = append(order, v)

		nbrs := make([]int, 0, len(adj[v]))
		for u := range adj[v] {
			nbrs = append(nbrs, u)
		}
		for _, u := range nbrs {
			queue.Remove(degreeKey{deg: len(adj[u]), v: u})
			delete(adj[u], v)
			for _, w := range nbrs {
				if w != u {
					adj[u][w] = struct{}{}
				}
			}
			queue.Put(degreeKey{deg: len(adj[u]), v: u}, nil)
		}
		delete(adj, v)
	}

	return order, nil
}
