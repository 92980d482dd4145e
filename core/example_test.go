package core_test

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// ExampleGraph_Contract collapses a perfect matching of the 4-cycle.
func ExampleGraph_Contract() {
	g, _ := core.FromEdges(4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})

	c, idMap, _ := g.Contract(core.Matching{{U: 1, V: 2}, {U: 3, V: 4}})
	fmt.Println(c.VertexCount(), c.Edges())
	fmt.Println(idMap[1], idMap[2], idMap[3], idMap[4])
	// Output:
	// 2 [{1 2}]
	// 1 1 2 2
}
