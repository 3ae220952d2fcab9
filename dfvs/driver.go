package dfvs

import (
	"context"

	"github.com/katalvlaran/dfvs/digraph"
	"github.com/katalvlaran/dfvs/ilpsolve"
	"github.com/katalvlaran/dfvs/reduction"
	"github.com/katalvlaran/dfvs/saheur"
)

// Config bundles the per-run tunables the two driver entry points
// share: which reduction rules the initial kernelization pass runs
// with, and (for Solve only) the exact per-SCC solver's own options.
type Config struct {
	Reduction reduction.Config
	Exact     ilpsolve.Config
}

// DefaultConfig returns the conservative defaults used throughout the
// pipeline: reduction keeps one witness per twin class and enables the
// funnel rule; the exact solver uses its own conservative defaults.
func DefaultConfig() Config {
	return Config{
		Reduction: reduction.Config{TwinWitness: true, EnableFunnel: true},
		Exact:     ilpsolve.DefaultConfig(),
	}
}

// Solve computes an exact minimum DFVS for g: heuristic reduction to
// collect an initial forced set, Tarjan decomposition, an exact
// per-component solve over each non-trivial SCC's induced subgraph,
// concatenated with the forced set. The output order is the order of
// determination, not a sorted order — callers needing a canonical form
// sort it themselves, matching the solver's ordering contract. g is not
// mutated: the reductions run on a clone.
func Solve(ctx context.Context, g *digraph.Graph, cfg Config) ([]int, error) {
	g = g.Clone()
	forced := reduction.HeuristicReduce(g, cfg.Reduction)

	if g.NumActive() == 0 {
		return forced, nil
	}

	result := append([]int(nil), forced...)
	for _, scc := range g.NonTrivialSCCs() {
		sub := g.InducedSubgraph(scc)
		part, err := ilpsolve.Solve(ctx, sub, cfg.Exact)
		if err != nil {
			return nil, err
		}
		result = append(result, part...)
	}
	return result, nil
}

// SolveHeuristic computes a bounded-runtime (near-minimum) DFVS by
// running reduction and SA-topo directly, never constructing an ILP —
// the path the bounded-runtime CLI entry point uses. g is not mutated:
// the reductions run on a clone.
func SolveHeuristic(g *digraph.Graph, cfg Config, topo saheur.TopoConfig) []int {
	g = g.Clone()
	forced := reduction.HeuristicReduce(g, cfg.Reduction)

	if g.NumActive() == 0 {
		return forced
	}

	heuristic := saheur.RunTopo(g, topo)
	return append(forced, heuristic...)
}
