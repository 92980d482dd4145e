package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// appendVertices adds n fresh vertices after the current maximum id of g and
// returns the id of the first one. Ids are base+1 .. base+n.
//
// Complexity: O(V) to find the current maximum, O(n) to insert.
func appendVertices(method string, g *core.Graph, n int) (int, error) {
	base := 0
	for _, v := range g.Vertices() {
		if v > base {
			base = v
		}
	}
	for i := 1; i <= n; i++ {
		if err := g.AddVertex(base + i); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(%d): %w", method, base+i, err)
		}
	}

	return base + 1, nil
}

// addEdge wraps core.Graph.AddEdge with method context.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// validateMin ensures got ≥ min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
