// File: view.go
// Role: Derived graphs with dense renumbering: Subgraph and Contract.
// Determinism:
//   - New ids are assigned 1, 2, ... in ascending order of the (smallest) old id.
// Concurrency:
//   - Read lock on the source only; the result is a fresh, unshared Graph.

package core

import "fmt"

// Subgraph returns the subgraph induced by vertices, renumbered densely from 1
// in ascending old-id order, together with the old → new id mapping.
// Duplicate ids in vertices are ignored.
//
// Errors:
//   - ErrInvalidVertex: if some id is not in the graph.
//
// Complexity: O(k log k + Σ deg) for k = len(vertices).
func (g *Graph) Subgraph(vertices []int) (*Graph, map[int]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if _, ok := g.adj[v]; !ok {
			return nil, nil, fmt.Errorf("Subgraph: vertex %d: %w", v, ErrInvalidVertex)
		}
		keep[v] = struct{}{}
	}

	order := sortedKeys(keep)
	idMap := make(map[int]int, len(order))
	out := newGraphSized(len(order), 0)
	for i, v := range order {
		idMap[v] = i + 1
		out.addVertexLocked(i + 1)
	}
	for _, v := range order {
		for _, u := range sortedKeys(g.adj[v]) {
			if u < v {
				continue
			}
			if _, ok := keep[u]; ok {
				out.addEdgeLocked(idMap[v], idMap[u])
			}
		}
	}

	return out, idMap, nil
}

// Contract collapses every pair of the matching into a single vertex and
// returns the contracted graph plus the old → new id mapping (total over the
// old vertex set).
//
// Behavior highlights:
//   - The merged vertex is adjacent to N(u) ∪ N(v) \ {u, v}.
//   - Unmatched vertices map to their own new id.
//   - Self-loops produced by contraction are suppressed and coinciding edges
//     are deduplicated; edge multiplicities are not tracked.
//   - |V'| = |V| - |m|.
//
// Errors:
//   - ErrInvalidMatching: a pair is not an edge, or two pairs share a vertex.
//
// Complexity: O(V log V + E log E).
func (g *Graph) Contract(m Matching) (*Graph, map[int]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// rep maps each matched vertex to its pair's smaller endpoint.
	rep := make(map[int]int, 2*len(m))
	for _, e := range m {
		if !g.hasEdgeLocked(e.U, e.V) {
			return nil, nil, fmt.Errorf("Contract: pair (%d,%d) is not an edge: %w", e.U, e.V, ErrInvalidMatching)
		}
		if _, dup := rep[e.U]; dup {
			return nil, nil, fmt.Errorf("Contract: vertex %d matched twice: %w", e.U, ErrInvalidMatching)
		}
		if _, dup := rep[e.V]; dup {
			return nil, nil, fmt.Errorf("Contract: vertex %d matched twice: %w", e.V, ErrInvalidMatching)
		}
		low := e.U
		if e.V < low {
			low = e.V
		}
		rep[e.U], rep[e.V] = low, low
	}

	order := g.verticesLocked()
	idMap := make(map[int]int, len(order))
	out := newGraphSized(len(order)-len(m), len(g.edges))
	next := 0
	// Representatives are the smallest member of their class, so they are
	// always visited before their partner.
	for _, v := range order {
		r, matched := rep[v]
		if matched && r != v {
			idMap[v] = idMap[r]
			continue
		}
		next++
		idMap[v] = next
		out.addVertexLocked(next)
	}
	for _, e := range g.edgesLocked() {
		a, b := idMap[e.U], idMap[e.V]
		if a != b {
			out.addEdgeLocked(a, b)
		}
	}

	return out, idMap, nil
}
