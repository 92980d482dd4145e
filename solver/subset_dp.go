// SPDX-License-Identifier: MIT
// Package: treewidth/solver
//
// subset_dp.go - exact treewidth by dynamic programming over vertex subsets.
//
// Recurrence (S is the set of vertices eliminated first):
//
//	TW(∅) = 0
//	TW(S) = min_{v ∈ S} max( TW(S∖{v}), |Q(S∖{v}, v)| )
//
// Q(S, v) is the set of vertices outside S ∪ {v} reachable from v through
// paths whose inner vertices all lie in S: exactly the neighbours v has when
// it is eliminated after S. tw(G) = TW(V).
//
// Implementation:
//   - Vertices are indexed 0..n-1 and sets are uint32 masks, so n ≤ 20 keeps
//     both tables within a few MiB.
//   - Masks are visited in increasing numeric order; S∖{v} < S, so every
//     sub-result is ready when needed.
//   - last[S] keeps the minimising v; walking it back from V yields the
//     ordering in reverse.
//
// Complexity: O(2^n · n²) time, O(2^n) bytes.

package solver

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/treewidth/core"
)

// MaxExactVertices is the largest graph SubsetDP accepts.
const MaxExactVertices = 20

// SubsetDP is the exact solver.
type SubsetDP struct{}

// Name implements Solver.
func (SubsetDP) Name() string { return NameSubsetDP }

// Exact implements Solver.
func (SubsetDP) Exact() bool { return true }

// Order returns a minimum-width elimination ordering of g.
//
// Errors: ErrNilGraph, ErrTooLarge when g has more than MaxExactVertices.
func (SubsetDP) Order(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("SubsetDP.Order: %w", ErrNilGraph)
	}
	vs := g.Vertices()
	n := len(vs)
	if n > MaxExactVertices {
		return nil, fmt.Errorf("SubsetDP.Order: %d vertices > %d: %w", n, MaxExactVertices, ErrTooLarge)
	}
	if n == 0 {
		return []int{}, nil
	}

	index := make(map[int]int, n)
	for i, v := range vs {
		index[v] = i
	}
	adj := make([]uint32, n)
	for _, e := range g.Edges() {
		a, b := index[e.U], index[e.V]
		adj[a] |= 1 << b
		adj[b] |= 1 << a
	}

	full := uint32(1)<<n - 1
	tw := make([]int8, full+1)
	last := make([]int8, full+1)
	for s := uint32(1); s <= full; s++ {
		best := int8(n)
		for rest := s; rest != 0; rest &= rest - 1 {
			v := bits.TrailingZeros32(rest)
			prev := s &^ (1 << v)
			w := int8(qSize(adj, prev, v))
			if tw[prev] > w {
				w = tw[prev]
			}
			if w < best {
				best, last[s] = w, int8(v)
			}
		}
		tw[s] = best
	}

	order := make([]int, n)
	for s, i := full, n-1; s != 0; i-- {
		v := last[s]
		order[i] = vs[v]
		s &^= 1 << v
	}

	return order, nil
}

// qSize returns |Q(s, v)| by a breadth-first sweep over masks.
func qSize(adj []uint32, s uint32, v int) int {
	visited := uint32(1) << v
	frontier := visited
	var reach uint32
	for frontier != 0 {
		var next uint32
		for f := frontier; f != 0; f &= f - 1 {
			next |= adj[bits.TrailingZeros32(f)]
		}
		next &^= visited
		visited |= next
		reach |= next &^ s
		frontier = next & s
	}

	return bits.OnesCount32(reach)
}
