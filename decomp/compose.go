package decomp

import (
	"sort"

	"github.com/katalvlaran/treewidth/reduce"
)

// Relabel returns a copy of td with every bag id v replaced by back[v].
// Ids missing from back are kept.
func Relabel(td *TreeDecomposition, back map[int]int) *TreeDecomposition {
	out := New()
	for _, id := range td.Nodes() {
		bag := td.Bag(id)
		for i, v := range bag {
			if old, ok := back[v]; ok {
				bag[i] = old
			}
		}
		p, _ := td.Parent(id)
		out.addNode(bag, p)
	}

	return out
}

// Merge appends the nodes of src to dst and hangs the roots of src below the
// first root of dst. The bags of dst and src must be vertex-disjoint. When dst
// is empty src's first root becomes the root.
func Merge(dst, src *TreeDecomposition) {
	offset := dst.next - 1
	for _, id := range src.Nodes() {
		p, _ := src.Parent(id)
		if p != 0 {
			p += offset
		}
		dst.addNode(src.bags[id], p)
	}
	dst.linkRoots()
}

// AttachSimplicial adds one node per elimination, processing elims in reverse.
// The bag of an eliminated vertex v is {v} ∪ N(v) where N(v) was a clique of
// the remaining graph; every clique of a valid decomposition lies in a single
// bag, so a node containing N(v) exists and the new node hangs below it.
// If td has no node yet the bag becomes the root; an empty N(v) attaches
// below the first root.
//
// Complexity: O(Σ |N(v)| · k) where k is the number of nodes holding a vertex.
func AttachSimplicial(td *TreeDecomposition, elims []reduce.Elimination) {
	idx := td.vertexIndex()

	for i := len(elims) - 1; i >= 0; i-- {
		e := elims[i]
		nbrs := make([]int, 0, len(e.Bag))
		for _, u := range e.Bag {
			if u != e.Vertex {
				nbrs = append(nbrs, u)
			}
		}

		parent := td.firstRoot()
		if len(nbrs) > 0 {
			parent = attachPoint(td, idx, nbrs)
		}
		id := td.addNode(e.Bag, parent)
		for _, v := range td.bags[id] {
			idx[v] = append(idx[v], id)
		}
	}
}

// attachPoint returns the smallest node whose bag holds all of nbrs. If none
// does, it returns the node sharing the most vertices with nbrs.
func attachPoint(td *TreeDecomposition, idx map[int][]int, nbrs []int) int {
	hits := make(map[int]int)
	for _, u := range nbrs {
		for _, id := range idx[u] {
			hits[id]++
		}
	}
	ids := make([]int, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	best, bestHits := td.firstRoot(), 0
	for _, id := range ids {
		if hits[id] == len(nbrs) {
			return id
		}
		if hits[id] > bestHits {
			best, bestHits = id, hits[id]
		}
	}

	return best
}
