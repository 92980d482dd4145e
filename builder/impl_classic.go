// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// impl_classic.go - deterministic topologies with known treewidth.
//
// Contract (all constructors):
//   • Validate sizes first (ErrTooFewVertices), no side effects on invalid input.
//   • Vertices are appended after the current maximum id of g.
//   • Edges are emitted in a stable order.

package builder

import "github.com/katalvlaran/treewidth/core"

// Path returns a Constructor for the path P_n (n ≥ 1): v1 - v2 - ... - vn.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		first, err := appendVertices(MethodPath, g, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(MethodPath, g, first+i, first+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		first, err := appendVertices(MethodCycle, g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for the star K_{1,n-1} (n ≥ 2); the center is the
// first appended vertex.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		center, err := appendVertices(MethodStar, g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodStar, g, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for the wheel W_n (n ≥ 4): a hub joined to
// every vertex of a cycle on the remaining n-1 vertices.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		hub, err := appendVertices(MethodWheel, g, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = addEdge(MethodWheel, g, hub, hub+1+i); err != nil {
				return err
			}
			if err = addEdge(MethodWheel, g, hub+1+i, hub+1+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for the clique K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		first, err := appendVertices(MethodComplete, g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b} (a, b ≥ 1); the left
// side is appended first.
// Complexity: O(a·b).
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "a", a, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "b", b, MinPartition); err != nil {
			return err
		}
		first, err := appendVertices(MethodCompleteBipartite, g, a+b)
		if err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err = addEdge(MethodCompleteBipartite, g, first+i, first+a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for the rows×cols grid graph (both ≥ 1).
// Cell (r, c) gets id first + r*cols + c.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		first, err := appendVertices(MethodGrid, g, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := first + r*cols + c
				if c+1 < cols {
					if err = addEdge(MethodGrid, g, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, g, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// FromPairs returns a Constructor that appends n vertices and the given edges,
// with pairs written 1-indexed relative to the appended block.
// Complexity: O(n + len(pairs)).
func FromPairs(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodFromPairs, "n", n, 1); err != nil {
			return err
		}
		first, err := appendVertices(MethodFromPairs, g, n)
		if err != nil {
			return err
		}
		for _, p := range pairs {
			if err = addEdge(MethodFromPairs, g, first+p[0]-1, first+p[1]-1); err != nil {
				return err
			}
		}

		return nil
	}
}
