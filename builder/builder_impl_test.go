// SPDX-License-Identifier: MIT
// Package builder_test checks the topology of every Constructor.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/builder"
	"github.com/katalvlaran/treewidth/core"
)

// TestBuilders_Functional runs table-driven topology checks for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, g.Edges())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(5, 1))
				for v := 1; v <= 5; v++ {
					d, err := g.Degree(v)
					require.NoError(t, err)
					require.Equal(t, 2, d)
				}
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(1)
				require.NoError(t, err)
				require.Equal(t, 5, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, g.MaxDegree())
				require.True(t, g.HasEdge(5, 2))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.IsClique(g.Vertices()))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.False(t, g.HasEdge(1, 2))
				require.False(t, g.HasEdge(3, 4))
				require.True(t, g.HasEdge(2, 5))
			},
		},
		{
			name: "Grid(3,3)", ctor: builder.Grid(3, 3), wantV: 9, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(5)
				require.NoError(t, err)
				require.Equal(t, 4, d)
				require.True(t, g.HasEdge(1, 4))
				require.False(t, g.HasEdge(3, 4))
			},
		},
		{
			name: "FromPairs", ctor: builder.FromPairs(3, [][2]int{{1, 3}, {3, 2}}), wantV: 3, wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []core.Edge{{U: 1, V: 3}, {U: 2, V: 3}}, g.Edges())
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)
		})
	}
}

// TestBuildGraph_AppendsDisjointBlocks composes two constructors into one graph.
func TestBuildGraph_AppendsDisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	require.True(t, g.IsClique([]int{4, 5, 6}))
	require.False(t, g.HasEdge(3, 4))
}

func TestBuilders_Validation(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"CompleteBipartite(1,0)", builder.CompleteBipartite(1, 0), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomGnm too many", builder.RandomGnm(4, 7), builder.ErrTooManyEdges},
		{"RandomGnm no rng", builder.RandomGnm(4, 3), builder.ErrNeedRandSource},
		{"RandomTree no rng", builder.RandomTree(5), builder.ErrNeedRandSource},
		{"FromPairs out of block", builder.FromPairs(2, [][2]int{{1, 3}}), core.ErrInvalidVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomBuilders_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}

	a, err := builder.BuildGraph(opts, builder.RandomGnm(10, 15))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomGnm(10, 15))
	require.NoError(t, err)
	require.Equal(t, 15, a.EdgeCount())
	require.Equal(t, a.Edges(), b.Edges())

	s1, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	s2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, s1.Edges(), s2.Edges())

	// Degenerate probabilities need no RNG.
	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())
	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, 10, full.EdgeCount())
}

func TestRandomTree_IsTree(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomTree(30))
	require.NoError(t, err)
	require.Equal(t, 30, g.VertexCount())
	require.Equal(t, 29, g.EdgeCount())
	for _, v := range g.Vertices()[1:] {
		d, err := g.Degree(v)
		require.NoError(t, err)
		require.Positive(t, d)
	}
}

func TestReferenceInstances(t *testing.T) {
	seen := make(map[string]bool)
	for _, in := range builder.ReferenceInstances() {
		require.False(t, seen[in.Name], "duplicate instance %q", in.Name)
		seen[in.Name] = true

		g, err := in.Graph()
		require.NoError(t, err, in.Name)
		require.Equal(t, in.Vertices, g.VertexCount(), in.Name)
		require.Equal(t, len(in.Edges), g.EdgeCount(), in.Name)
		require.Less(t, in.Width, in.Vertices, in.Name)
	}
}
