// SPDX-License-Identifier: MIT
// Package: treewidth
//
// estimate.go - end-to-end treewidth estimation.
//
// Pipeline (per call, on a private clone of the input):
//  1. Simplicial elimination (lossless); its bags are cliques of the input,
//     so their width is a lower bound.
//  2. Split the remainder into connected components.
//  3. Per component: contract to the base threshold, solve the top graph,
//     unwind, optionally refine with min-degree, map ids back.
//  4. Merge component decompositions, re-attach simplicial bags, validate.
//
// Bound: each unwound level turns width w' into at most 2·w' + 1, so a
// component contracted k times ends at width ≤ 2^k·(w'+1) - 1.

package treewidth

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/treewidth/bfs"
	"github.com/katalvlaran/treewidth/contract"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/decomp"
	"github.com/katalvlaran/treewidth/reduce"
	"github.com/katalvlaran/treewidth/solver"
)

// EstimateDefault runs Estimate with DefaultOptions.
func EstimateDefault(g *core.Graph) (*Result, error) {
	return Estimate(g, DefaultOptions())
}

// Estimate returns an upper bound on the treewidth of g together with a
// witnessing tree decomposition. g is never modified.
//
// Errors:
//   - ErrNilGraph for a nil g.
//   - ErrInvalidOptions for inconsistent opts.
//   - wrapped solver errors.
//
// Estimate panics with an error wrapping decomp.ErrInvariantViolation if the
// decomposition it built does not witness g; that is a defect in this
// package, never a property of the input.
func Estimate(g *core.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("Estimate: %w", ErrNilGraph)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	base, err := solver.ByName(opts.Solver)
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	engine, err := contract.NewEngine(opts.BaseThreshold, logger.With("stage", "contract"))
	if err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}

	work := g.Clone()
	elims := reduce.EliminateSimplicial(work)
	res := &Result{
		IsExact:    true,
		LowerBound: reduce.EliminationWidth(elims),
		Stats:      Stats{Vertices: g.VertexCount(), Eliminated: len(elims)},
	}
	logger.Debug("simplicial elimination", "removed", len(elims), "remaining", work.VertexCount())

	var parts [][]int
	switch {
	case work.VertexCount() == 0:
	case opts.SplitComponents:
		parts = bfs.Components(work)
	default:
		parts = [][]int{work.Vertices()}
	}
	res.Stats.Components = len(parts)

	td := decomp.New()
	for _, part := range parts {
		sub, idMap, err := work.Subgraph(part)
		if err != nil {
			return nil, fmt.Errorf("Estimate: %w", err)
		}
		ctd, err := solveComponent(sub, engine, base, opts, res)
		if err != nil {
			return nil, fmt.Errorf("Estimate: %w", err)
		}
		back := make(map[int]int, len(idMap))
		for old, id := range idMap {
			back[id] = old
		}
		decomp.Merge(td, decomp.Relabel(ctd, back))
	}
	decomp.AttachSimplicial(td, elims)

	if opts.Validate {
		if err = decomp.Validate(td, g); err != nil {
			panic(fmt.Errorf("treewidth: Estimate: %w", err))
		}
	}

	res.Decomposition = td
	res.Width = td.Width()
	if res.IsExact {
		res.LowerBound = res.Width
	}
	logger.Info("treewidth estimated",
		"vertices", res.Stats.Vertices, "width", res.Width, "exact", res.IsExact, "lower", res.LowerBound)

	return res, nil
}

// solveComponent returns a decomposition of the connected graph sub and
// folds its bounds into res.
func solveComponent(
	sub *core.Graph,
	engine *contract.Engine,
	base solver.Solver,
	opts Options,
	res *Result,
) (*decomp.TreeDecomposition, error) {
	h, err := engine.Build(sub)
	if err != nil {
		return nil, err
	}
	top := h.Top()
	if n := top.VertexCount(); n > res.Stats.MaxBaseVertices {
		res.Stats.MaxBaseVertices = n
	}

	var (
		baseTD *decomp.TreeDecomposition
		exact  = base.Exact()
	)
	if top.EdgeCount() == 0 {
		baseTD, exact = decomp.Trivial(top), true
	} else {
		order, err := base.Order(top)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", base.Name(), err)
		}
		if baseTD, err = decomp.FromEliminationOrder(top, order); err != nil {
			return nil, err
		}
	}
	// The top graph is a minor of sub.
	if exact && baseTD.Width() > res.LowerBound {
		res.LowerBound = baseTD.Width()
	}

	if h.Depth() == 0 {
		res.IsExact = res.IsExact && exact
		return baseTD, nil
	}

	res.IsExact = false
	res.Stats.Contracted++
	res.Stats.Rounds += h.Depth()
	td := decomp.Unwind(baseTD, h)
	opts.Logger.Debug("component unwound",
		"vertices", sub.VertexCount(), "rounds", h.Depth(), "base", top.VertexCount(), "width", td.Width())

	if !opts.Refine {
		return td, nil
	}
	order, err := solver.MinDegree{}.Order(sub)
	if err != nil {
		return nil, err
	}
	alt, err := decomp.FromEliminationOrder(sub, order)
	if err != nil {
		return nil, err
	}
	if alt.Width() < td.Width() {
		res.Stats.RefinedComponents++
		return alt, nil
	}

	return td, nil
}

// SolveExact returns the exact treewidth of a graph with at most
// solver.MaxExactVertices vertices.
func SolveExact(g *core.Graph) (int, error) {
	order, err := solver.SubsetDP{}.Order(g)
	if err != nil {
		return 0, fmt.Errorf("SolveExact: %w", err)
	}
	td, err := decomp.FromEliminationOrder(g, order)
	if err != nil {
		return 0, fmt.Errorf("SolveExact: %w", err)
	}

	return td.Width(), nil
}
