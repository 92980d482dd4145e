// Package reduce implements the structural reductions that run before and
// during matching contraction:
//
//   - Simplicial vertices: v is simplicial when its open neighbourhood is a
//     clique. Removing a simplicial vertex is lossless for treewidth:
//     tw(G) = max(deg(v), tw(G - v)), and its closed neighbourhood can always
//     hang as a leaf bag below any bag that contains N(v).
//   - Maximal matching: a greedy scan of the edge list. Every maximal
//     matching has at least half the size of a maximum matching, which is the
//     bound the contraction hierarchy relies on.
//
// Determinism
//
//	Vertices and edges are visited in ascending order, so every function
//	returns the same result for the same graph.
package reduce
