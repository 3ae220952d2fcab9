package dfvs_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/dfvs/dfvs"
	"github.com/katalvlaran/dfvs/dimacs"
	"github.com/katalvlaran/dfvs/saheur"
)

// ExampleSolve computes an exact minimum directed feedback vertex set
// for a 3-vertex simple cycle read from the wire format: removing any
// one vertex of a simple directed cycle breaks it, so the minimum set
// has size 1.
func ExampleSolve() {
	// Header "3 3 0" (N M S, M and S reserved), then N adjacency lines
	// of 1-indexed out-neighbors: 1->2, 2->3, 3->1.
	g, err := dimacs.Parse(strings.NewReader("3 3 0\n2\n3\n1\n"))
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	got, err := dfvs.Solve(context.Background(), g, dfvs.DefaultConfig())
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}

	fmt.Println(len(got))
	fmt.Println(g.IsAcyclicWithFVS(got))

	// Output:
	// 1
	// true
}

// ExampleSolveHeuristic computes a bounded-runtime feedback vertex set
// for the same 3-vertex cycle via SA-topo, without constructing an ILP.
func ExampleSolveHeuristic() {
	g, err := dimacs.Parse(strings.NewReader("3 3 0\n2\n3\n1\n"))
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	topo := saheur.DefaultTopoConfig(g.N())
	got := dfvs.SolveHeuristic(g, dfvs.DefaultConfig(), topo)

	fmt.Println(len(got))
	fmt.Println(g.IsAcyclicWithFVS(got))

	// Output:
	// 1
	// true
}
