// Package contract builds multilevel matching-contraction hierarchies.
//
// Each round computes a maximal matching of the current graph and collapses
// every matched pair into one vertex. The result is a minor of the previous
// graph with exactly |matching| fewer vertices, so the number of rounds is
// bounded and treewidth never grows from one level to the next.
//
// A Hierarchy keeps every intermediate graph together with the old→new id
// mapping of each round, so that a decomposition of the smallest graph can be
// unwound back to the input (see package decomp).
//
// Termination reasons:
//
//	Empty      the current graph has no vertices
//	Threshold  the current graph has at most Engine.Threshold vertices
//	Edgeless   the current graph has no edges, so no pair can be contracted
package contract
