package treewidth_test

import (
	"fmt"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/core"
)

// ExampleEstimateDefault estimates the treewidth of the 6-cycle.
func ExampleEstimateDefault() {
	g, _ := core.FromEdges(6, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}})

	res, err := treewidth.EstimateDefault(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Width, res.IsExact, res.Decomposition.Len())
	// Output: 2 true 6
}
