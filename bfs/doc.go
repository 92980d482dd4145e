// Package bfs provides breadth-first search over a core.Graph and the
// connected-component split built on top of it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex and
//     returns a BFSResult with Order, Depth and Parent.
//   - OnVisit hook (may abort with an error), neighbour filtering,
//     MaxDepth limit and context cancellation via functional Options.
//   - Components partitions a graph into its connected components; the
//     treewidth of a graph is the maximum over its components, so the
//     estimator solves each component independently.
//
// Determinism
//
//	core.Graph.Neighbors returns ids sorted ascending, and BFS enqueues
//	neighbours in that order, so visit sequences are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus neighbour sorting.
//   - Memory: O(V).
package bfs
