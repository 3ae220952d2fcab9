package digraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// paceExample builds the 4-vertex PACE-style example from the solver's
// testable-properties scenario S1: arcs (0,1),(0,2),(1,2),(2,3),(3,0).
func paceExample() *Graph {
	g := New(4)
	g.AddArc(0, 1)
	g.AddArc(0, 2)
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 0)
	return g
}

func TestS1PaceExample(t *testing.T) {
	g := paceExample()
	require.True(t, g.IsAcyclic() == false)
	require.True(t, g.IsAcyclicWithFVS([]int{0}))
	require.False(t, g.IsAcyclicWithFVS([]int{1}))
}

func TestS5DirectedFiveCycle(t *testing.T) {
	g := New(5)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 4)
	g.AddArc(4, 0)
	require.False(t, g.IsAcyclic())
	cyc := g.FindCycleWithFVS(nil)
	require.Len(t, cyc, 5)
}

func TestS6AcyclicChain(t *testing.T) {
	g := New(5)
	for i := 0; i < 4; i++ {
		g.AddArc(i, i+1)
	}
	require.True(t, g.IsAcyclic())
	require.Nil(t, g.FindCycleWithFVS(nil))
}

func TestRemoveVertexInvariants(t *testing.T) {
	g := paceExample()
	g.RemoveVertex(2)

	for u := 0; u < g.N(); u++ {
		for _, w := range g.OutNeighbors(u) {
			require.NotEqual(t, 2, w)
		}
		for _, w := range g.InNeighbors(u) {
			require.NotEqual(t, 2, w)
		}
	}
	require.True(t, g.Deleted(2))
	require.Empty(t, g.OutNeighbors(2))
	require.Empty(t, g.InNeighbors(2))
}

func TestAdjacencyStrictlyAscending(t *testing.T) {
	g := New(5)
	g.AddArc(0, 3)
	g.AddArc(0, 1)
	g.AddArc(0, 4)
	g.AddArc(0, 1) // duplicate, idempotent

	adj := g.OutNeighbors(0)
	require.True(t, sort.IntsAreSorted(adj))
	require.Equal(t, []int{1, 3, 4}, adj)
}

func TestArcSymmetryInvariant(t *testing.T) {
	g := New(3)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	for u := 0; u < 3; u++ {
		for _, v := range g.OutNeighbors(u) {
			require.True(t, sortedContains(g.InNeighbors(v), u))
		}
	}
}

func TestRemoveVerticesBatch(t *testing.T) {
	g := New(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 0)

	g.RemoveVertices([]int{1, 3})
	require.True(t, g.Deleted(1))
	require.True(t, g.Deleted(3))
	require.Empty(t, g.OutNeighbors(0))
	require.Empty(t, g.InNeighbors(2))
}

func TestRemoveVertexPanicsOnDoubleDelete(t *testing.T) {
	g := New(2)
	g.RemoveVertex(0)
	require.Panics(t, func() { g.RemoveVertex(0) })
}

func TestStarsFindsTwoCycles(t *testing.T) {
	g := New(5)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(2, 3)
	g.AddArc(3, 2)
	g.AddArc(4, 0)

	stars := g.Stars()
	require.Len(t, stars, 4)
	require.Equal(t, 0, stars[0].Vertex)
	require.Equal(t, []int{1}, stars[0].Partners)
	require.Equal(t, 2, stars[2].Vertex)
	require.Equal(t, []int{3}, stars[2].Partners)
}

func TestS4TwoDisjointTwoCyclesPlusTail(t *testing.T) {
	g := New(5)
	g.AddArc(0, 1)
	g.AddArc(1, 0)
	g.AddArc(2, 3)
	g.AddArc(3, 2)
	g.AddArc(4, 0)

	require.False(t, g.IsAcyclic())
	require.True(t, g.IsAcyclicWithFVS([]int{0, 2}))
}

func TestSCCsDecomposePaceExample(t *testing.T) {
	g := paceExample()
	sccs := g.SCCs()

	var total int
	for _, s := range sccs {
		total += len(s)
	}
	require.Equal(t, 4, total)

	nontrivial := g.NonTrivialSCCs()
	require.Len(t, nontrivial, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, nontrivial[0])
}

func TestSCCsSingletonsOnAcyclicChain(t *testing.T) {
	g := New(5)
	for i := 0; i < 4; i++ {
		g.AddArc(i, i+1)
	}
	sccs := g.SCCs()
	require.Len(t, sccs, 5)
	require.Empty(t, g.NonTrivialSCCs())
}

func TestInducedSubgraphPreservesIDs(t *testing.T) {
	g := New(5)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)
	g.AddArc(3, 4)

	sub := g.InducedSubgraph([]int{0, 1, 2})
	require.True(t, sub.Deleted(3))
	require.True(t, sub.Deleted(4))
	require.False(t, sub.IsAcyclic())
	require.Equal(t, []int{1}, sub.OutNeighbors(0))
}

func TestCompressRenumbersAndMaps(t *testing.T) {
	g := New(5)
	g.AddArc(1, 3)
	g.RemoveVertex(0)
	g.RemoveVertex(2)
	g.RemoveVertex(4)

	compressed, newToOld := g.Compress()
	require.Equal(t, 2, compressed.N())
	require.Equal(t, []int{1, 3}, newToOld)
	require.Equal(t, []int{1}, compressed.OutNeighbors(0))
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(3)
	g.AddArc(0, 1)
	clone := g.Clone()
	clone.AddArc(1, 2)

	require.False(t, sortedContains(g.OutNeighbors(1), 2))
	require.True(t, sortedContains(clone.OutNeighbors(1), 2))
}
