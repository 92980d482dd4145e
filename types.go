package treewidth

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/treewidth/decomp"
	"github.com/katalvlaran/treewidth/solver"
)

var (
	// ErrNilGraph is returned when Estimate receives a nil graph.
	ErrNilGraph = errors.New("treewidth: graph is nil")

	// ErrInvalidOptions is returned for inconsistent Options.
	ErrInvalidOptions = errors.New("treewidth: invalid options")
)

// DefaultBaseThreshold is the vertex count at or below which a component is
// handed to the base solver instead of being contracted further.
const DefaultBaseThreshold = 12

// Options configures Estimate. Zero values are not defaults; start from
// DefaultOptions.
type Options struct {
	// BaseThreshold stops contraction once a graph has at most this many
	// vertices. With the subset-dp solver it may not exceed
	// solver.MaxExactVertices.
	BaseThreshold int `toml:"base_threshold"`

	// Solver names the base-case solver: "subset-dp" or "min-degree".
	Solver string `toml:"solver"`

	// SplitComponents solves every connected component separately.
	SplitComponents bool `toml:"split_components"`

	// Refine also runs the min-degree heuristic on every contracted
	// component and keeps the narrower decomposition.
	Refine bool `toml:"refine"`

	// Validate re-checks the final decomposition against the input.
	Validate bool `toml:"validate"`

	// Logger receives debug and summary lines; nil discards them.
	Logger *log.Logger `toml:"-"`
}

// DefaultOptions returns the recommended settings.
//
// Defaults:
//   - BaseThreshold:   DefaultBaseThreshold (12).
//   - Solver:          "subset-dp" (exact).
//   - SplitComponents: true.
//   - Refine:          true.
//   - Validate:        true.
//   - Logger:          nil (discard).
func DefaultOptions() Options {
	return Options{
		BaseThreshold:   DefaultBaseThreshold,
		Solver:          solver.NameSubsetDP,
		SplitComponents: true,
		Refine:          true,
		Validate:        true,
	}
}

// Result is the outcome of Estimate.
type Result struct {
	// Width is the width of Decomposition, an upper bound on the treewidth.
	Width int

	// Decomposition is a valid tree decomposition of the input graph.
	Decomposition *decomp.TreeDecomposition

	// IsExact is true when no component went through contraction and the
	// base solver is exact, or when simplicial elimination consumed the graph.
	IsExact bool

	// LowerBound is a proven lower bound on the treewidth; equal to Width
	// whenever IsExact.
	LowerBound int

	Stats Stats
}

// Stats describes the work done by one Estimate call.
type Stats struct {
	Vertices          int // input vertices
	Eliminated        int // simplicial vertices removed up front
	Components        int // components left after elimination
	Contracted        int // components that went through contraction
	Rounds            int // contraction rounds over all components
	MaxBaseVertices   int // largest graph handed to the base solver
	RefinedComponents int // components where min-degree beat the unwound bound
}
