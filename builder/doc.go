// Package builder provides deterministic generators of core.Graph test
// instances for the treewidth engine: classic topologies with known
// treewidth and seeded random graphs for property tests and benchmarks.
//
// The package offers:
//
//   - Orchestration: BuildGraph(bopts, cons...) creates a graph and applies
//     Constructors in order. Every constructor appends its vertices after
//     the ones already present, so composing two constructors yields a
//     disjoint union (e.g. Complete(3), Complete(3) = two triangles).
//   - Topologies with known treewidth:
//     – Path(n), Star(n), RandomTree(n)      tw = 1
//     – Cycle(n), Wheel(n)                   tw = 2, 3
//     – Complete(n)                          tw = n-1
//     – CompleteBipartite(a,b)               tw = min(a,b)
//     – Grid(r,c)                            tw = min(r,c)
//   - Random models (require WithSeed or WithRand):
//     – RandomSparse(n,p)  Erdős–Rényi G(n,p)
//     – RandomGnm(n,m)     uniform G(n,m)
//   - Fixed fixtures: FromPairs(n, pairs) and ReferenceInstances().
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Constructors validate parameters first and return sentinel errors
//     wrapped with the method name; they never panic. Option constructors
//     (WithRand) panic on nil, surfacing programmer error early.
package builder
