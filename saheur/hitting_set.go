package saheur

import (
	"math"
	"time"

	"github.com/katalvlaran/dfvs/constraint"
	"github.com/katalvlaran/dfvs/rangeset"
)

// HSConfig bundles the annealing schedule for HittingSet. Zero value is
// invalid; use DefaultHSConfig.
type HSConfig struct {
	InitialTemp   float64
	Alpha         float64
	SweepsPerTemp int
	MaxIdleSweeps int
	Seed          int64
	Deadline      time.Time // zero value means no time budget
}

// DefaultHSConfig mirrors DefaultTopoConfig's schedule, scaled to the
// number of variables n rather than |V|.
func DefaultHSConfig(n int) HSConfig {
	return HSConfig{
		InitialTemp:   0.6,
		Alpha:         0.99,
		SweepsPerTemp: 5 * n,
		MaxIdleSweeps: 50,
		Seed:          0,
	}
}

// RunHittingSet anneals a 0/1 assignment over variables 0..n-1 subject
// to constraints, starting from warmStart if non-nil (otherwise all-1,
// the trivially feasible assignment) and returns the selected variable
// set (the solution's "on" indices) found with fewest members.
//
// Moves flip a single on variable to off; any constraint this breaks
// is greedily repaired by turning back on the first still-off variable
// that restores it. Acceptance follows the standard Metropolis rule on
// the resulting change in selected-set size.
func RunHittingSet(n int, constraints []constraint.Constraint, warmStart []bool, cfg HSConfig) []int {
	if n == 0 {
		return nil
	}

	x := make([]bool, n)
	on := rangeset.New(n)
	if warmStart != nil {
		copy(x, warmStart)
		for v, set := range x {
			if set {
				on.Insert(v)
			}
		}
	} else {
		for v := range x {
			x[v] = true
			on.Insert(v)
		}
	}

	// byVar indexes, for each variable, which constraints mention it —
	// needed to find a broken constraint quickly after a flip and to
	// repair it without rescanning the full constraint list.
	byVar := make([][]int, n)
	for ci, c := range constraints {
		for _, v := range c.Variables {
			byVar[v] = append(byVar[v], ci)
		}
	}

	best := append([]int(nil), on.Members()...)
	bestLen := len(best)

	rng := rngFromSeed(cfg.Seed)
	temp := cfg.InitialTemp
	idleSweeps := 0
	hasDeadline := !cfg.Deadline.IsZero()
	steps := 0

	for idleSweeps < cfg.MaxIdleSweeps {
		improved := false
		for i := 0; i < cfg.SweepsPerTemp; i++ {
			steps++
			if hasDeadline && steps&deadlineCheckMask == 0 && time.Now().After(cfg.Deadline) {
				return best
			}
			if on.Len() == 0 {
				break
			}
			v := on.At(rng.Intn(on.Len()))

			before := on.Len()
			x[v] = false
			on.Remove(v)
			repaired := repairBroken(x, on, constraints, byVar[v])
			after := on.Len()
			delta := after - before

			accept := delta <= 0
			if !accept {
				p := math.Exp(-float64(delta) / temp)
				accept = rng.Float64() < p
			}
			if !accept {
				// Undo the repair first: it may have turned v itself back
				// on, and v must end up on.
				for _, r := range repaired {
					x[r] = false
					on.Remove(r)
				}
				x[v] = true
				on.Insert(v)
			}

			if on.Len() < bestLen {
				best = append([]int(nil), on.Members()...)
				bestLen = on.Len()
				improved = true
			}
		}
		temp *= cfg.Alpha
		if improved {
			idleSweeps = 0
		} else {
			idleSweeps++
		}
	}

	return best
}

// repairBroken scans the constraints indexed by touched (those that
// mention the just-flipped variable) and, for each now-unsatisfied
// one, turns on its first off variable — restoring feasibility with a
// single greedy addition per broken constraint. Returns the variables
// turned on, so the caller can undo the repair on rejection.
func repairBroken(x []bool, on *rangeset.RangeSet, constraints []constraint.Constraint, touched []int) []int {
	var fixed []int
	for _, ci := range touched {
		c := constraints[ci]
		if satisfiedCount(x, c) >= c.LowerBound {
			continue
		}
		for _, v := range c.Variables {
			if !x[v] {
				x[v] = true
				on.Insert(v)
				fixed = append(fixed, v)
				break
			}
		}
	}
	return fixed
}

func satisfiedCount(x []bool, c constraint.Constraint) int {
	count := 0
	for _, v := range c.Variables {
		if x[v] {
			count++
		}
	}
	return count
}
