// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/core"
)

func TestGraph_AddVertexRange(t *testing.T) {
	g := core.NewGraph()

	for _, n := range []int{0, -3} {
		err := g.AddVertexRange(n)
		require.ErrorIs(t, err, core.ErrInvalidSize, "AddVertexRange(%d)", n)
	}
	require.Equal(t, 0, g.VertexCount())

	require.NoError(t, g.AddVertexRange(V5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, g.Vertices())

	// Idempotent for already present ids.
	require.NoError(t, g.AddVertexRange(V3))
	require.Equal(t, V5, g.VertexCount())
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(0), core.ErrInvalidVertex)
	require.NoError(t, g.AddVertex(7))
	require.NoError(t, g.AddVertex(7))
	require.True(t, g.HasVertex(7))
	require.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdge(t *testing.T) {
	g := mustGraph(t, V4)

	// Self-loop is a silent no-op.
	require.NoError(t, g.AddEdge(V1, V1))
	require.Equal(t, 0, g.EdgeCount())

	// Unknown endpoint.
	require.ErrorIs(t, g.AddEdge(V1, VMissing), core.ErrInvalidVertex)
	require.ErrorIs(t, g.AddEdge(VMissing, V1), core.ErrInvalidVertex)

	// Idempotent insertion in either orientation.
	require.NoError(t, g.AddEdge(V2, V1))
	require.NoError(t, g.AddEdge(V1, V2))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []core.Edge{{U: 1, V: 2}}, g.Edges())
	require.True(t, g.HasEdge(V1, V2))
	require.True(t, g.HasEdge(V2, V1))
	requireSymmetric(t, g)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := mustGraph(t, V4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	require.ErrorIs(t, g.RemoveEdge(V1, V3), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdge(V1, VMissing), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveEdge(V3, V2))
	require.False(t, g.HasEdge(V2, V3))
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 3, V: 4}}, g.Edges())
	require.ErrorIs(t, g.RemoveEdge(V2, V3), core.ErrEdgeNotFound)
	requireSymmetric(t, g)
}

func TestGraph_RemoveVertex(t *testing.T) {
	g := mustGraph(t, V5, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4}, [2]int{4, 5})

	require.ErrorIs(t, g.RemoveVertex(VMissing), core.ErrInvalidVertex)

	require.NoError(t, g.RemoveVertex(V3))
	require.False(t, g.HasVertex(V3))
	// Ids of the remaining vertices are stable.
	require.Equal(t, []int{1, 2, 4, 5}, g.Vertices())
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 4, V: 5}}, g.Edges())

	d, err := g.Degree(V1)
	require.NoError(t, err)
	require.Equal(t, 1, d)
	requireSymmetric(t, g)
}

func TestGraph_DegreeQueries(t *testing.T) {
	// Star: center 1, leaves 2..6.
	g := mustGraph(t, V6, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4}, [2]int{1, 5}, [2]int{1, 6})

	d, err := g.Degree(V1)
	require.NoError(t, err)
	require.Equal(t, 5, d)

	_, err = g.Degree(VMissing)
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	degs := g.VertexDegrees()
	require.Len(t, degs, V6)
	for v := 2; v <= 6; v++ {
		require.Equal(t, 1, degs[v])
	}
	require.Equal(t, 5, g.MaxDegree())

	nbrs, err := g.Neighbors(V1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5, 6}, nbrs)
	_, err = g.Neighbors(VMissing)
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	stats := g.Stats()
	require.Equal(t, core.GraphStats{VertexCount: 6, EdgeCount: 5, MaxDegree: 5}, *stats)
}

func TestGraph_IsClique(t *testing.T) {
	g := mustGraph(t, V4, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 4})

	require.True(t, g.IsClique(nil))
	require.True(t, g.IsClique([]int{V4}))
	require.True(t, g.IsClique([]int{V1, V2, V3}))
	require.False(t, g.IsClique([]int{V2, V3, V4}))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := mustGraph(t, V3, [2]int{1, 2}, [2]int{2, 3})
	c := g.Clone()

	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.RemoveVertex(V2))
	require.NoError(t, c.AddEdge(V1, V3))

	// Source untouched.
	require.Equal(t, []int{1, 2, 3}, g.Vertices())
	require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
	require.False(t, g.HasEdge(V1, V3))
	requireSymmetric(t, c)
}

func TestGraph_Clear(t *testing.T) {
	g := mustGraph(t, V3, [2]int{1, 2})
	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.AddVertexRange(V2))
	require.NoError(t, g.AddEdge(V1, V2))
	require.Equal(t, 1, g.EdgeCount())
}

func TestFromEdges(t *testing.T) {
	_, err := core.FromEdges(0, nil)
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = core.FromEdges(V3, [][2]int{{1, 4}})
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	g, err := core.FromEdges(V3, [][2]int{{1, 2}, {2, 1}, {3, 3}})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestEdge_Helpers(t *testing.T) {
	e := core.NewEdge(V5, V2)
	require.Equal(t, core.Edge{U: 2, V: 5}, e)
	require.Equal(t, V5, e.Other(V2))
	require.Equal(t, V2, e.Other(V5))

	m := core.Matching{{U: 1, V: 2}, {U: 4, V: 5}}
	require.True(t, m.Covers(V4))
	require.False(t, m.Covers(V3))
}
