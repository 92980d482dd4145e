// Package decomp builds and validates tree decompositions.
//
// A TreeDecomposition is a rooted tree of bags over the vertex ids of some
// core.Graph. It is not itself a graph: node ids index bags, and the tree is
// stored as a parent map (0 marks the root).
//
// Builders:
//
//	FromEliminationOrder  elimination game with fill-in, one bag per vertex
//	Trivial               one singleton bag per vertex (edgeless graphs)
//	Unwind                expands a decomposition of a contracted graph back
//	                      through a contract.Hierarchy
//	Relabel               maps bag ids through a renumbering
//	Merge                 joins decompositions of vertex-disjoint graphs
//	AttachSimplicial      hangs the bags of eliminated simplicial vertices
//
// Validate checks vertex coverage, edge coverage, the running-intersection
// property and tree shape against a graph; every failure wraps
// ErrInvariantViolation.
package decomp
