package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

var (
	// ErrNilGraph is returned when a solver receives a nil graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrTooLarge is returned by exact solvers for graphs above their limit.
	ErrTooLarge = errors.New("solver: graph too large for exact solver")

	// ErrUnknownSolver is returned by ByName for an unregistered name.
	ErrUnknownSolver = errors.New("solver: unknown solver")
)

// Solver computes an elimination ordering of every vertex of g.
// Exact solvers return an ordering of minimum width.
type Solver interface {
	Name() string
	Exact() bool
	Order(g *core.Graph) ([]int, error)
}

// Solver names accepted by ByName.
const (
	NameSubsetDP  = "subset-dp"
	NameMinDegree = "min-degree"
)

// ByName returns the solver registered under name.
func ByName(name string) (Solver, error) {
	switch name {
	case NameSubsetDP:
		return SubsetDP{}, nil
	case NameMinDegree:
		return MinDegree{}, nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownSolver)
	}
}
