package decomp

import "github.com/katalvlaran/treewidth/contract"

// Unwind expands base, a decomposition of h.Top(), into a decomposition of
// h.Root. Levels are replayed most recent first; in every bag each id is
// replaced by all of its members on the previous level. Tree shape is kept.
//
// Each replayed level at most doubles every bag, so one level turns width w'
// into at most 2·w' + 1. Since every level graph is a minor of the previous
// one, the exact width of h.Top() is a lower bound on the treewidth of h.Root.
//
// Complexity: O(Depth · Σ|bag|).
func Unwind(base *TreeDecomposition, h *contract.Hierarchy) *TreeDecomposition {
	bags := make(map[int][]int, base.Len())
	for _, id := range base.Nodes() {
		bags[id] = base.Bag(id)
	}

	for i := len(h.Levels) - 1; i >= 0; i-- {
		lvl := h.Levels[i]
		for id, bag := range bags {
			expanded := make([]int, 0, 2*len(bag))
			for _, v := range bag {
				expanded = append(expanded, lvl.Members(v)...)
			}
			bags[id] = expanded
		}
	}

	out := New()
	for _, id := range base.Nodes() {
		p, _ := base.Parent(id)
		out.addNode(bags[id], p)
	}

	return out
}
