package contract

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/reduce"
)

// ErrInvalidThreshold is returned by NewEngine for a negative threshold.
var ErrInvalidThreshold = errors.New("contract: threshold must be non-negative")

// Engine contracts graphs until they reach Threshold vertices.
type Engine struct {
	Threshold int
	logger    *log.Logger
}

// NewEngine returns an Engine with the given base-case threshold. A nil
// logger discards output.
func NewEngine(threshold int, logger *log.Logger) (*Engine, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("NewEngine: threshold=%d: %w", threshold, ErrInvalidThreshold)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Engine{Threshold: threshold, logger: logger}, nil
}

// Build contracts a clone of g round by round and returns the hierarchy.
// g itself is not modified.
//
// Every round removes exactly |matching| ≥ 1 vertices, so Build performs at
// most V rounds; in practice a maximal matching roughly halves sparse graphs.
//
// Complexity: O(rounds · (V + E log E)).
func (e *Engine) Build(g *core.Graph) (*Hierarchy, error) {
	h := &Hierarchy{Root: g.Clone()}
	cur := h.Root

	for round := 1; ; round++ {
		n := cur.VertexCount()
		if n == 0 {
			h.Terminal = Empty
			break
		}
		if n <= e.Threshold {
			h.Terminal = Threshold
			break
		}
		m := reduce.MaximalMatching(cur)
		if len(m) == 0 {
			h.Terminal = Edgeless
			break
		}

		next, idMap, err := cur.Contract(m)
		if err != nil {
			return nil, fmt.Errorf("Build: round %d: %w", round, err)
		}
		e.logger.Debug("contracted", "round", round, "vertices", n, "matching", len(m), "next", next.VertexCount())

		h.Levels = append(h.Levels, newLevel(m, idMap, next))
		cur = next
	}

	e.logger.Debug("hierarchy ready", "rounds", h.Depth(), "top", h.Top().VertexCount(), "terminal", h.Terminal)

	return h, nil
}
