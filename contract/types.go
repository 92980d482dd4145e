package contract

import (
	"sort"

	"github.com/katalvlaran/treewidth/core"
)

// Terminal is the reason a hierarchy stopped growing.
type Terminal int

const (
	// Empty means the top graph has no vertices.
	Empty Terminal = iota
	// Threshold means the top graph is small enough for the base solver.
	Threshold
	// Edgeless means no edge remained to contract.
	Edgeless
)

func (t Terminal) String() string {
	switch t {
	case Empty:
		return "empty"
	case Threshold:
		return "threshold"
	case Edgeless:
		return "edgeless"
	default:
		return "unknown"
	}
}

// Level is one contraction round: Graph was obtained from the previous level's
// graph by collapsing every pair of Matching.
type Level struct {
	Matching core.Matching
	IDMap    map[int]int // previous-level id → id in Graph
	Graph    *core.Graph

	members map[int][]int
}

func newLevel(m core.Matching, idMap map[int]int, g *core.Graph) *Level {
	members := make(map[int][]int, g.VertexCount())
	for old, id := range idMap {
		members[id] = append(members[id], old)
	}
	for id := range members {
		sort.Ints(members[id])
	}

	return &Level{Matching: m, IDMap: idMap, Graph: g, members: members}
}

// Members returns the previous-level ids that were merged into id: two for a
// contracted pair, one otherwise, none for an unknown id.
func (l *Level) Members(id int) []int {
	return l.members[id]
}

// Hierarchy is the sequence of contracted graphs, most recent level last.
type Hierarchy struct {
	Root     *core.Graph
	Levels   []*Level
	Terminal Terminal
}

// Top returns the smallest graph of the hierarchy.
func (h *Hierarchy) Top() *core.Graph {
	if len(h.Levels) == 0 {
		return h.Root
	}

	return h.Levels[len(h.Levels)-1].Graph
}

// Depth returns the number of contraction rounds.
func (h *Hierarchy) Depth() int { return len(h.Levels) }
