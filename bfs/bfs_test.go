package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/bfs"
	"github.com/katalvlaran/treewidth/core"
)

func mustGraph(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, pairs)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, 2)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepthsAndPath(t *testing.T) {
	// 1-2-3-4-5-6-1
	g := mustGraph(t, 6, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 1})

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 6, 3, 5, 4}, res.Order)
	require.Equal(t, 3, res.Depth[4])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, path)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := mustGraph(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Order)
	_, err = res.PathTo(4)
	require.Error(t, err)

	res, err = bfs.BFS(g, 1, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Order)
}

func TestBFS_HookAbortAndCancel(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})

	stop := errors.New("stop")
	_, err := bfs.BFS(g, 1, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	// Two triangles {1,2,3} and {4,5,6} plus isolated 7.
	g := mustGraph(t, 7,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3},
		[2]int{4, 5}, [2]int{5, 6}, [2]int{4, 6})

	comps := bfs.Components(g)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, comps)
	require.Nil(t, bfs.Components(nil))
	require.Empty(t, bfs.Components(core.NewGraph()))
}
