package reduction

import (
	"errors"

	"github.com/katalvlaran/dfvs/digraph"
)

// ErrInfeasible indicates that the forced set produced by Reduce
// provably exceeds the supplied upper bound: no DFVS of that size
// exists for this instance.
var ErrInfeasible = errors.New("reduction: forced set exceeds upper bound")

// Reduce applies every sound rule (including the parameterized star
// domination rule) to g in a fixed-priority loop until a full pass
// makes no change, mutating g into its kernel. It returns the forced
// vertices in the order they were determined, or ErrInfeasible if the
// forced count exceeds upperBound at any point. Safe: preserves the
// optimum up to the forced offset.
func Reduce(g *digraph.Graph, upperBound int, cfg Config) ([]int, error) {
	var forced []int
	check := func(newlyForced []int) error {
		forced = append(forced, newlyForced...)
		if len(forced) > upperBound {
			return ErrInfeasible
		}
		return nil
	}

	for {
		changed := false

		if n := removeSCCSingletons(g); n > 0 {
			changed = true
		}
		if n := removeEmptyVertices(g); n > 0 {
			changed = true
		}
		if n := contractDegreeOne(g); n > 0 {
			changed = true
		}
		if loops := forceSelfLoops(g); len(loops) > 0 {
			if err := check(loops); err != nil {
				return nil, err
			}
			changed = true
		}
		if twins := forceTwins(g, cfg.TwinWitness); len(twins) > 0 {
			if err := check(twins); err != nil {
				return nil, err
			}
			changed = true
		}
		remaining := upperBound - len(forced)
		if remaining >= 0 {
			if dominated := forceStarDomination(g, remaining); len(dominated) > 0 {
				if err := check(dominated); err != nil {
					return nil, err
				}
				changed = true
			}
		}
		if cfg.EnableFunnel {
			if funnels := forceFunnels(g); len(funnels) > 0 {
				if err := check(funnels); err != nil {
					return nil, err
				}
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return forced, nil
}

// HeuristicReduce applies only the rules that never need an upper
// bound — self-loops, empty/sink/source vertices, in/out-1
// contraction, SCC singletons, twin reduction, and the supplemental
// funnel rule — iterating to a fixed point. It never reports
// infeasibility: over-forcing a vertex can only help feasibility, not
// hurt it.
func HeuristicReduce(g *digraph.Graph, cfg Config) []int {
	var forced []int

	for {
		changed := false

		if n := removeSCCSingletons(g); n > 0 {
			changed = true
		}
		if n := removeEmptyVertices(g); n > 0 {
			changed = true
		}
		if n := contractDegreeOne(g); n > 0 {
			changed = true
		}
		if loops := forceSelfLoops(g); len(loops) > 0 {
			forced = append(forced, loops...)
			changed = true
		}
		if twins := forceTwins(g, cfg.TwinWitness); len(twins) > 0 {
			forced = append(forced, twins...)
			changed = true
		}
		if cfg.EnableFunnel {
			if funnels := forceFunnels(g); len(funnels) > 0 {
				forced = append(forced, funnels...)
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return forced
}
