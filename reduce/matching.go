package reduce

import "github.com/katalvlaran/treewidth/core"

// MaximalMatching greedily scans g.Edges() (sorted by (U,V)) and keeps an edge
// whenever neither endpoint is matched yet.
//
// The result is maximal, so its size is at least half of a maximum matching:
// every edge of a maximum matching shares an endpoint with some chosen edge,
// and a chosen edge can cover at most two of them.
//
// Complexity: O(E log E).
func MaximalMatching(g *core.Graph) core.Matching {
	matched := make(map[int]bool)
	m := make(core.Matching, 0)
	for _, e := range g.Edges() {
		if matched[e.U] || matched[e.V] {
			continue
		}
		matched[e.U], matched[e.V] = true, true
		m = append(m, e)
	}

	return m
}
