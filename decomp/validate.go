package decomp

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// Validate checks that td is a tree decomposition of g:
//
//   - shape: one root (none for an empty td), every parent exists, no cycles;
//   - bags only hold vertices of g;
//   - vertex coverage: every vertex of g is in some bag;
//   - edge coverage: both endpoints of every edge share some bag;
//   - running intersection: the nodes holding a vertex form a connected subtree.
//
// Every failure wraps ErrInvariantViolation.
//
// Complexity: O(N·depth + Σ|bag| + E·k) for k nodes per vertex.
func Validate(td *TreeDecomposition, g *core.Graph) error {
	if err := validateShape(td); err != nil {
		return err
	}

	idx := td.vertexIndex()
	for v := range idx {
		if !g.HasVertex(v) {
			return fmt.Errorf("Validate: bag vertex %d not in graph: %w", v, ErrInvariantViolation)
		}
	}
	for _, v := range g.Vertices() {
		if len(idx[v]) == 0 {
			return fmt.Errorf("Validate: vertex %d not covered: %w", v, ErrInvariantViolation)
		}
	}

	for _, e := range g.Edges() {
		covered := false
		for _, id := range idx[e.U] {
			if td.Contains(id, e.V) {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("Validate: edge %d-%d not covered: %w", e.U, e.V, ErrInvariantViolation)
		}
	}

	// The nodes holding v induce a subtree iff exactly one of them has a
	// parent outside the set.
	for v, ids := range idx {
		tops := 0
		for _, id := range ids {
			if p := td.parent[id]; p == 0 || !td.Contains(p, v) {
				tops++
			}
		}
		if tops != 1 {
			return fmt.Errorf("Validate: vertex %d spans %d subtrees: %w", v, tops, ErrInvariantViolation)
		}
	}

	return nil
}

func validateShape(td *TreeDecomposition) error {
	if td == nil {
		return fmt.Errorf("Validate: nil decomposition: %w", ErrInvariantViolation)
	}
	if td.Len() == 0 {
		return nil
	}
	if roots := td.Roots(); len(roots) != 1 {
		return fmt.Errorf("Validate: %d roots: %w", len(roots), ErrInvariantViolation)
	}
	for _, id := range td.Nodes() {
		if len(td.bags[id]) == 0 {
			return fmt.Errorf("Validate: node %d has an empty bag: %w", id, ErrInvariantViolation)
		}
		cur, steps := id, 0
		for cur != 0 {
			p, ok := td.parent[cur]
			if !ok {
				return fmt.Errorf("Validate: node %d has unknown parent %d: %w", id, cur, ErrInvariantViolation)
			}
			if steps++; steps > td.Len() {
				return fmt.Errorf("Validate: cycle through node %d: %w", id, ErrInvariantViolation)
			}
			cur = p
		}
	}

	return nil
}
