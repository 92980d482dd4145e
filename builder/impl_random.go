// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// impl_random.go - seeded random graph models.
//
// Contract:
//   • cfg.rng must be non-nil when the outcome is actually random
//     (else ErrNeedRandSource).
//   • Stable trial order: unordered pairs (i, j), i < j, i asc then j asc.
//
// Determinism:
//   • Same seed ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n, p):
// each unordered pair is an edge independently with probability p.
// p ∈ {0, 1} does not need an RNG.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		first, err := appendVertices(MethodRandomSparse, g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = addEdge(MethodRandomSparse, g, first+i, first+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomGnm returns a Constructor for the uniform random graph G(n, m):
// all n(n-1)/2 pairs are shuffled and the first m become edges.
//
// Errors:
//   - ErrTooFewVertices when n < 1, or m < 0.
//   - ErrTooManyEdges when m > n(n-1)/2.
//   - ErrNeedRandSource when 0 < m < n(n-1)/2 and no RNG was configured.
//
// Complexity: O(n²) time and space for the pair list.
func RandomGnm(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomGnm, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateMin(MethodRandomGnm, "m", m, 0); err != nil {
			return err
		}
		maxEdges := n * (n - 1) / 2
		if m > maxEdges {
			return fmt.Errorf("%s: m=%d > n(n-1)/2=%d: %w", MethodRandomGnm, m, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil && m > 0 && m < maxEdges {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomGnm, ErrNeedRandSource)
		}
		first, err := appendVertices(MethodRandomGnm, g, n)
		if err != nil {
			return err
		}

		pairs := make([][2]int, 0, maxEdges)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{first + i, first + j})
			}
		}
		if cfg.rng != nil {
			cfg.rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
		}
		for _, p := range pairs[:m] {
			if err = addEdge(MethodRandomGnm, g, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor for a random recursive tree on n vertices:
// vertex i (i ≥ 2) attaches to a uniformly chosen earlier vertex.
//
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomTree, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomTree, ErrNeedRandSource)
		}
		first, err := appendVertices(MethodRandomTree, g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			parent := 0
			if cfg.rng != nil {
				parent = cfg.rng.Intn(i)
			}
			if err = addEdge(MethodRandomTree, g, first+parent, first+i); err != nil {
				return err
			}
		}

		return nil
	}
}
