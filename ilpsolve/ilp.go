package ilpsolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dfvs/constraint"
	"github.com/katalvlaran/dfvs/digraph"
	"github.com/katalvlaran/dfvs/lowerbound"
	"github.com/katalvlaran/dfvs/reduction"
	"github.com/katalvlaran/dfvs/saheur"
	"github.com/katalvlaran/dfvs/vcoracle"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrSolverFailed means the ILP itself could not be solved (the
// residual instance reported infeasible by the MIP backend, which
// cannot happen for a correctly built hitting-set model, or a
// numerical failure inside it) — fatal, propagated to the CLI as a
// nonzero exit.
var ErrSolverFailed = errors.New("ilpsolve: solver failed")

// Solve computes an exact minimum DFVS for g (g is mutated: reductions
// and undirected-edge removal are applied in place, matching the
// driver's explicit-clone-on-branch convention — callers that still
// need the original pass a cloned graph in).
func Solve(ctx context.Context, g *digraph.Graph, cfg Config) ([]int, error) {
	ctx = backgroundIfNil(ctx)

	var forced []int
	var constraints []constraint.Constraint

	for {
		stars := g.Stars()
		if len(stars) == 0 {
			break
		}
		for _, s := range stars {
			g.SetForbidden(s.Vertex)
			for _, p := range s.Partners {
				g.SetForbidden(p)
				constraints = append(constraints, constraint.AtLeastOne([]int{s.Vertex, p}))
			}
		}
		g.RemoveUndirectedEdges(stars)

		more, err := reduction.Reduce(g, g.N(), cfg.Reduction)
		if err != nil {
			return nil, fmt.Errorf("ilpsolve: %w", err)
		}
		forced = append(forced, more...)
		constraints = dropSatisfied(constraints, forced)
	}

	if g.NumActive() == 0 {
		return forced, nil
	}

	if allPairs(constraints) && cfg.Oracle.Name != "" {
		if cover, ok := tryOracle(ctx, g, constraints, cfg.Oracle); ok {
			return append(forced, cover...), nil
		}
	}

	vars := g.ActiveVertices()
	model := buildModel(vars, constraints)

	seed := lowerbound.EdgeCycleCoverConstraints(g)
	allConstraints := append(append([]constraint.Constraint(nil), constraints...), seed...)
	for _, c := range seed {
		model.addConstraintRow(c.Variables)
	}

	warm := saheur.RunHittingSet(len(vars), reindex(allConstraints, model.colOf), nil, withSeed(cfg.WarmStart, len(vars)))
	if len(warm) > 0 {
		model.addUpperBoundRow(len(warm))
	}

	selected, err := solveOnce(model, cfg.tolerance())
	if err != nil {
		return nil, err
	}

	for {
		fvs := toGlobal(vars, selected)
		cyc := g.FindCycleWithFVS(fvs)
		if cyc == nil {
			break
		}
		// Greedy fallback: including the cycle's first vertex keeps a
		// feasible candidate available even if re-solving fails below.
		selected[model.colOf[cyc[0]]] = true
		model.addConstraintRow(cyc)

		if resolved, err := solveOnce(model, cfg.tolerance()); err == nil {
			selected = resolved
		}
	}

	return append(forced, toGlobal(vars, selected)...), nil
}

// solveOnce runs the MIP backend once and snaps its (near-)integral
// result to booleans at the threshold tol (Config.Tolerance).
func solveOnce(model *ilpModel, tol float64) ([]bool, error) {
	_, x, err := lp.BNB(model.c, nil, nil, model.g, model.h, model.whole, 1e-9)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverFailed, err)
	}
	selected := make([]bool, len(model.vars))
	for i, xi := range x {
		if xi >= tol {
			selected[i] = true
		}
	}
	return selected, nil
}

func toGlobal(vars []int, selected []bool) []int {
	var out []int
	for i, v := range vars {
		if selected[i] {
			out = append(out, v)
		}
	}
	return out
}

// reindex translates constraints' global vertex ids into the model's
// local column space, for handing to the standalone SA-hs warm start
// (which operates on variables 0..n-1, not original graph ids).
func reindex(constraints []constraint.Constraint, colOf map[int]int) []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(constraints))
	for _, c := range constraints {
		var cols []int
		for _, v := range c.Variables {
			if col, ok := colOf[v]; ok {
				cols = append(cols, col)
			}
		}
		if len(cols) > 0 {
			out = append(out, constraint.New(cols, c.LowerBound))
		}
	}
	return out
}

func withSeed(cfg saheur.HSConfig, n int) saheur.HSConfig {
	out := saheur.DefaultHSConfig(n)
	out.Seed = cfg.Seed
	return out
}

// dropSatisfied discards constraints already met by vertices in
// forced, keeping the residual constraint set minimal as reductions
// force more vertices round after round.
func dropSatisfied(constraints []constraint.Constraint, forced []int) []constraint.Constraint {
	if len(forced) == 0 {
		return constraints
	}
	in := make(map[int]bool, len(forced))
	for _, v := range forced {
		in[v] = true
	}
	out := constraints[:0]
	for _, c := range constraints {
		satisfied := false
		for _, v := range c.Variables {
			if in[v] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			out = append(out, c)
		}
	}
	return out
}

func allPairs(constraints []constraint.Constraint) bool {
	for _, c := range constraints {
		if len(c.Variables) != 2 || c.LowerBound != 1 {
			return false
		}
	}
	return len(constraints) > 0
}

func tryOracle(ctx context.Context, g *digraph.Graph, constraints []constraint.Constraint, oracle VCOracle) ([]int, bool) {
	edges := make([]vcoracle.Edge, 0, len(constraints))
	for _, c := range constraints {
		edges = append(edges, vcoracle.Edge{U: c.Variables[0], V: c.Variables[1]})
	}
	cover, ok, err := vcoracle.Solve(ctx, oracle.Name, oracle.Args, g.N(), edges, oracle.Timeout)
	if err != nil || !ok {
		return nil, false
	}
	if !g.IsAcyclicWithFVS(cover) {
		return nil, false
	}
	return cover, true
}
