// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/core"
)

// Common vertex ids used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
	V5 = 5
	V6 = 6

	VMissing = 99
)

// mustGraph builds a graph over 1..n from pairs or fails the test.
func mustGraph(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, pairs)
	require.NoError(t, err, "FromEdges(%d)", n)

	return g
}

// requireSymmetric checks the adjacency ⇔ edge-list invariant.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	seen := 0
	for v, nbrs := range adj {
		for _, u := range nbrs {
			require.Contains(t, adj[u], v, "adjacency of %d must contain %d", u, v)
			require.True(t, g.HasEdge(u, v))
			seen++
		}
	}
	require.Equal(t, 2*g.EdgeCount(), seen, "every edge appears twice in adjacency")
	for _, e := range g.Edges() {
		require.Less(t, e.U, e.V, "edges are canonical")
		require.Contains(t, adj[e.U], e.V)
	}
}
