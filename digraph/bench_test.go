package digraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dfvs/digraph"
)

// buildRandomDigraph returns a reproducible random digraph on n vertices
// built from m random arc draws (self-loop draws are skipped, duplicates
// collapse harmlessly via AddArc's dedup), with every fifth draw also
// adding the reverse arc so Stars has 2-cycles to find.
func buildRandomDigraph(n, m int) *digraph.Graph {
	rng := rand.New(rand.NewSource(1))
	g := digraph.New(n)
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		g.AddArc(u, v)
		if i%5 == 0 {
			g.AddArc(v, u)
		}
	}
	return g
}

// BenchmarkSCCs measures Tarjan decomposition on a random digraph with
// 2000 vertices built from 8000 arc draws.
func BenchmarkSCCs(b *testing.B) {
	g := buildRandomDigraph(2000, 8000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SCCs()
	}
}

// BenchmarkStars measures 2-cycle detection on the same random digraph.
func BenchmarkStars(b *testing.B) {
	g := buildRandomDigraph(2000, 8000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Stars()
	}
}
