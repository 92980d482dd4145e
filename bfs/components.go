package bfs

import "github.com/katalvlaran/treewidth/core"

// Components returns the connected components of g. Each component is listed
// in BFS visit order from its smallest vertex; components are ordered by their
// smallest vertex. A nil graph yields nil.
//
// Complexity: O(V log V + E log d).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.VertexCount())
	var comps [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// v comes from g.Vertices(), so only a concurrent mutation of g gets here.
			continue
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}
