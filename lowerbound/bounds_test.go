package lowerbound

import (
	"testing"

	"github.com/katalvlaran/dfvs/digraph"
	"github.com/stretchr/testify/require"
)

func threeClique() *digraph.Graph {
	g := digraph.New(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				g.AddArc(i, j)
			}
		}
	}
	return g
}

func TestVCLowerBoundOnThreeClique(t *testing.T) {
	g := threeClique()
	// Every pair is a 2-cycle: VC-LP on a triangle is 1.5 -> floor 1.
	require.GreaterOrEqual(t, VCLowerBound(g), 1)
}

func TestCycleLowerBoundOnFiveCycle(t *testing.T) {
	g := digraph.New(5)
	for i := 0; i < 5; i++ {
		g.AddArc(i, (i+1)%5)
	}
	require.GreaterOrEqual(t, CycleLowerBound(g, 10), 1)
}

func TestEdgeCycleCoverLowerBoundOnTwoDisjointCycles(t *testing.T) {
	g := digraph.New(5)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(2, 3)
	g.AddArc(3, 2)
	g.AddArc(4, 0)

	require.GreaterOrEqual(t, EdgeCycleCoverLowerBound(g), 2)
}

func TestBoundsAreValidOnAcyclicGraph(t *testing.T) {
	g := digraph.New(4)
	for i := 0; i < 3; i++ {
		g.AddArc(i, i+1)
	}
	require.Equal(t, 0, VCLowerBound(g))
	require.Equal(t, 0, CycleLowerBound(g, 10))
	require.Equal(t, 0, EdgeCycleCoverLowerBound(g))
}
