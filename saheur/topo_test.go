package saheur

import (
	"testing"

	"github.com/katalvlaran/dfvs/digraph"
	"github.com/stretchr/testify/require"
)

func TestRunTopoAcyclicFindsEmptyFVS(t *testing.T) {
	g := digraph.New(4)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 3)

	cfg := DefaultTopoConfig(g.N())
	cfg.SweepsPerTemp = 20
	cfg.MaxIdleSweeps = 5
	got := RunTopo(g, cfg)
	require.Empty(t, got)
}

func TestRunTopoSingleCycleFindsHittingVertex(t *testing.T) {
	g := digraph.New(3)
	g.AddArc(0, 1)
	g.AddArc(1, 2)
	g.AddArc(2, 0)

	cfg := DefaultTopoConfig(g.N())
	cfg.SweepsPerTemp = 30
	cfg.MaxIdleSweeps = 10
	got := RunTopo(g, cfg)
	require.Len(t, got, 1)
	require.True(t, g.IsAcyclicWithFVS(got))
}

func TestRunTopoEmptyGraph(t *testing.T) {
	g := digraph.New(0)
	cfg := DefaultTopoConfig(g.N())
	got := RunTopo(g, cfg)
	require.Nil(t, got)
}
