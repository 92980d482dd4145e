// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/core"
)

func TestGraph_Subgraph(t *testing.T) {
	// Path 1-2-3-4-5 plus chord 2-5.
	g := mustGraph(t, V5, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{2, 5})

	sub, idMap, err := g.Subgraph([]int{V5, V2, V4, V2})
	require.NoError(t, err)
	require.Equal(t, map[int]int{2: 1, 4: 2, 5: 3}, idMap)
	require.Equal(t, []int{1, 2, 3}, sub.Vertices())
	// Induced edges: 4-5 → 2-3, 2-5 → 1-3.
	require.Equal(t, []core.Edge{{U: 1, V: 3}, {U: 2, V: 3}}, sub.Edges())
	requireSymmetric(t, sub)

	_, _, err = g.Subgraph([]int{V1, VMissing})
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	// Source untouched.
	require.Equal(t, 5, g.EdgeCount())
}

func TestGraph_Contract(t *testing.T) {
	// Cycle 1-2-3-4-5-6-1.
	g := mustGraph(t, V6,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6}, [2]int{1, 6})

	m := core.Matching{{U: 1, V: 2}, {U: 3, V: 4}}
	c, idMap, err := g.Contract(m)
	require.NoError(t, err)

	// |V'| = |V| - |m|.
	require.Equal(t, g.VertexCount()-len(m), c.VertexCount())
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4}, idMap)
	// Contracted cycle C6 / {12, 34} is C4: 1-2-3-4-1.
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 1, V: 4}, {U: 2, V: 3}, {U: 3, V: 4}}, c.Edges())
	requireSymmetric(t, c)
}

func TestGraph_ContractDeduplicatesAndDropsLoops(t *testing.T) {
	// Triangle 1-2-3: contracting 1-2 leaves a single edge, no loop.
	g := mustGraph(t, V3, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})

	c, idMap, err := g.Contract(core.Matching{{U: 1, V: 2}})
	require.NoError(t, err)
	require.Equal(t, 2, c.VertexCount())
	require.Equal(t, []core.Edge{{U: 1, V: 2}}, c.Edges())
	require.Equal(t, idMap[1], idMap[2])
	require.NotEqual(t, idMap[1], idMap[3])
}

func TestGraph_ContractRejectsInvalidMatching(t *testing.T) {
	g := mustGraph(t, V4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	cases := []struct {
		name string
		m    core.Matching
	}{
		{name: "non-edge", m: core.Matching{{U: 1, V: 3}}},
		{name: "shared endpoint", m: core.Matching{{U: 1, V: 2}, {U: 2, V: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := g.Contract(tc.m)
			require.ErrorIs(t, err, core.ErrInvalidMatching)
		})
	}
}

func TestGraph_ContractEmptyMatchingIsRenumberedCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(8))
	require.NoError(t, g.AddEdge(3, 8))

	c, idMap, err := g.Contract(nil)
	require.NoError(t, err)
	require.Equal(t, map[int]int{3: 1, 8: 2}, idMap)
	require.Equal(t, []core.Edge{{U: 1, V: 2}}, c.Edges())
}
