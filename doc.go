// Package treewidth estimates the treewidth of undirected graphs and returns
// a tree decomposition that witnesses the bound.
//
// Small graphs are solved exactly. Larger ones go through a multilevel
// scheme: lossless simplicial elimination, then repeated maximal-matching
// contraction down to a base size, an exact solve of the base graph, and an
// unwinding of the contraction levels back to the input.
//
// Packages:
//
//	core/      Graph, Edge, Matching; thread-safe mutable adjacency sets
//	bfs/       breadth-first traversal and connected components
//	reduce/    simplicial detection and elimination, maximal matching
//	contract/  contraction hierarchy engine
//	decomp/    tree decompositions: builders, unwinding, validation
//	solver/    base-case solvers (exact subset DP, min-degree heuristic)
//	builder/   deterministic and seeded graph generators, reference instances
//
// Quick example:
//
//	g, _ := core.FromEdges(6, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}})
//	res, err := treewidth.EstimateDefault(g)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Width, res.IsExact) // 2 true
//
// Configuration may come from TOML (see ParseOptions and LoadOptions):
//
//	base_threshold = 12
//	solver = "subset-dp"
//	split_components = true
//	refine = true
//	validate = true
package treewidth
