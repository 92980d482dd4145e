package core_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/core"
)

const benchN = 1000

func benchGrid(b *testing.B) *core.Graph {
	b.Helper()
	const side = 32
	pairs := make([][2]int, 0, 2*side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c + 1
			if c+1 < side {
				pairs = append(pairs, [2]int{v, v + 1})
			}
			if r+1 < side {
				pairs = append(pairs, [2]int{v, v + side})
			}
		}
	}

	return mustGraph(b, side*side, pairs...)
}

func BenchmarkAddEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		_ = g.AddVertexRange(benchN)
		for v := 2; v <= benchN; v++ {
			_ = g.AddEdge(v-1, v)
		}
	}
}

func BenchmarkClone(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkContract(b *testing.B) {
	g := benchGrid(b)
	var m core.Matching
	for _, e := range g.Edges() {
		if !m.Covers(e.U) && !m.Covers(e.V) && len(m) < 64 {
			m = append(m, e)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.Contract(m)
	}
}
