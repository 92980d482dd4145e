package builder

import "github.com/katalvlaran/treewidth/core"

// Instance is a fixed graph with its known treewidth.
// Exact reports whether the instance is small enough for the default
// estimator settings to reach Width; otherwise Width is only a floor.
type Instance struct {
	Name     string
	Vertices int
	Edges    [][2]int
	Width    int
	Exact    bool
}

// Graph materializes the instance over vertices 1..Vertices.
func (in Instance) Graph() (*core.Graph, error) {
	return core.FromEdges(in.Vertices, in.Edges)
}

// ReferenceInstances returns the reference graphs used to check solvers
// end to end, 1-indexed, with their exact treewidth.
func ReferenceInstances() []Instance {
	return []Instance{
		{
			Name:     "tree",
			Vertices: 6,
			Edges:    [][2]int{{1, 2}, {1, 3}, {1, 4}, {3, 5}, {4, 6}},
			Width:    1,
			Exact:    true,
		},
		{
			Name:     "star",
			Vertices: 6,
			Edges:    [][2]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}},
			Width:    1,
			Exact:    true,
		},
		{
			Name:     "cycle6",
			Vertices: 6,
			Edges:    [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}},
			Width:    2,
			Exact:    true,
		},
		{
			Name:     "two-triangles",
			Vertices: 6,
			Edges:    [][2]int{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}},
			Width:    2,
			Exact:    true,
		},
		{
			Name:     "series-parallel-8",
			Vertices: 8,
			Edges: [][2]int{
				{1, 2}, {1, 3}, {2, 3}, {2, 5}, {2, 6}, {2, 7}, {3, 4},
				{3, 5}, {4, 5}, {5, 7}, {5, 8}, {6, 7}, {7, 8},
			},
			Width: 2,
			Exact: true,
		},
		{
			Name:     "grid3x3",
			Vertices: 9,
			Edges: [][2]int{
				{1, 2}, {1, 4}, {2, 3}, {2, 5}, {3, 6}, {4, 5},
				{4, 7}, {5, 6}, {5, 8}, {6, 9}, {7, 8}, {8, 9},
			},
			Width: 3,
			Exact: true,
		},
		{
			Name:     "k5",
			Vertices: 5,
			Edges: [][2]int{
				{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 3},
				{2, 4}, {2, 5}, {3, 4}, {3, 5}, {4, 5},
			},
			Width: 4,
			Exact: true,
		},
		{
			Name:     "series-parallel-theta",
			Vertices: 8,
			Edges: [][2]int{
				{1, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 6},
				{4, 6}, {5, 6}, {6, 8}, {1, 7}, {7, 8},
			},
			Width: 2,
			Exact: true,
		},
		{
			Name:     "sparse-21",
			Vertices: 21,
			Edges: [][2]int{
				{1, 13}, {1, 17}, {1, 19}, {1, 6}, {2, 15}, {2, 18}, {2, 19}, {2, 20},
				{13, 16}, {13, 20}, {13, 21}, {15, 17}, {15, 21}, {15, 3}, {16, 18},
				{16, 3}, {16, 4}, {17, 4}, {17, 5}, {18, 5}, {18, 6}, {19, 8}, {19, 14},
				{20, 7}, {20, 9}, {21, 8}, {21, 10}, {3, 9}, {3, 11}, {4, 10}, {4, 12},
				{5, 11}, {5, 14}, {6, 7}, {6, 12}, {7, 10}, {7, 11}, {8, 11}, {8, 12},
				{9, 12}, {9, 14}, {10, 14},
			},
			Width: 8,
		},
	}
}
