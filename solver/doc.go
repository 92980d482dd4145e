// Package solver provides base-case solvers that return elimination orderings.
//
// An elimination ordering fully determines a tree decomposition (see
// decomp.FromEliminationOrder) whose width is the width of the ordering, so a
// solver returns the ordering rather than a bare number.
//
//	SubsetDP   exact dynamic program over vertex subsets, O*(2^n);
//	           refuses graphs above MaxExactVertices.
//	MinDegree  greedy minimum-degree heuristic with fill-in; any size,
//	           upper bound only.
package solver
