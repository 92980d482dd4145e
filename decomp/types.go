// SPDX-License-Identifier: MIT
// Package: treewidth/decomp
//
// types.go - TreeDecomposition storage and read-only queries.
//
// Invariants (maintained by the builders in this package):
//   • Node ids are dense 1..Len() in creation order.
//   • Bags are sorted ascending and duplicate-free.
//   • parent[n] == 0 marks n as a root; a finished decomposition has at most
//     one root.
//
// Complexity:
//   • Bag, Parent: O(1). Contains: O(log |bag|). Width: O(N).

package decomp

import (
	"errors"
	"sort"
)

var (
	// ErrInvariantViolation indicates a decomposition that does not witness
	// its graph. It always signals a construction defect.
	ErrInvariantViolation = errors.New("decomp: invariant violation")

	// ErrInvalidOrder indicates an elimination order that is not a
	// permutation of the graph's vertices.
	ErrInvalidOrder = errors.New("decomp: invalid elimination order")
)

// TreeDecomposition is a tree of bags. The zero value is not usable; use New.
type TreeDecomposition struct {
	bags   map[int][]int
	parent map[int]int
	next   int
}

// New returns an empty decomposition.
func New() *TreeDecomposition {
	return &TreeDecomposition{
		bags:   make(map[int][]int),
		parent: make(map[int]int),
		next:   1,
	}
}

// addNode stores a sorted copy of bag under parent (0 for a root) and returns
// the new node id.
func (td *TreeDecomposition) addNode(bag []int, parent int) int {
	id := td.next
	td.next++
	td.bags[id] = normalize(bag)
	td.parent[id] = parent

	return id
}

// setParent re-links node id below parent.
func (td *TreeDecomposition) setParent(id, parent int) {
	td.parent[id] = parent
}

// Len returns the number of nodes.
func (td *TreeDecomposition) Len() int { return len(td.bags) }

// Nodes returns all node ids in ascending order.
func (td *TreeDecomposition) Nodes() []int {
	out := make([]int, 0, len(td.bags))
	for id := range td.bags {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Bag returns a copy of the bag of node id, or nil for an unknown node.
func (td *TreeDecomposition) Bag(id int) []int {
	b, ok := td.bags[id]
	if !ok {
		return nil
	}

	return append([]int(nil), b...)
}

// Parent returns the parent of node id and whether id exists. Roots report 0.
func (td *TreeDecomposition) Parent(id int) (int, bool) {
	p, ok := td.parent[id]

	return p, ok
}

// Roots returns the nodes without a parent, ascending.
func (td *TreeDecomposition) Roots() []int {
	var out []int
	for _, id := range td.Nodes() {
		if td.parent[id] == 0 {
			out = append(out, id)
		}
	}

	return out
}

// Contains reports whether vertex v is in the bag of node id.
func (td *TreeDecomposition) Contains(id, v int) bool {
	b := td.bags[id]
	i := sort.SearchInts(b, v)

	return i < len(b) && b[i] == v
}

// Width returns the largest bag size minus one; 0 for an empty decomposition.
func (td *TreeDecomposition) Width() int {
	w := 0
	for _, b := range td.bags {
		if len(b)-1 > w {
			w = len(b) - 1
		}
	}

	return w
}

// firstRoot returns the smallest root id, or 0 when td is empty.
func (td *TreeDecomposition) firstRoot() int {
	roots := td.Roots()
	if len(roots) == 0 {
		return 0
	}

	return roots[0]
}

// linkRoots hangs every root except the first one below the first one.
// Bags of distinct roots share no vertex in every caller, so the running
// intersection property is preserved.
func (td *TreeDecomposition) linkRoots() {
	roots := td.Roots()
	for _, r := range roots[min(1, len(roots)):] {
		td.setParent(r, roots[0])
	}
}

// vertexIndex maps each vertex to the nodes whose bag contains it.
func (td *TreeDecomposition) vertexIndex() map[int][]int {
	idx := make(map[int][]int)
	for _, id := range td.Nodes() {
		for _, v := range td.bags[id] {
			idx[v] = append(idx[v], id)
		}
	}

	return idx
}

// normalize returns a sorted, duplicate-free copy of bag.
func normalize(bag []int) []int {
	out := append([]int(nil), bag...)
	sort.Ints(out)
	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}

	return out[:w]
}
