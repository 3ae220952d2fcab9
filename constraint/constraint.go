// Package constraint defines the hitting-set Constraint shared by the
// lower-bound LP relaxations, the heuristic hitting-set SA, and the
// exact ILP builder: "at least LowerBound of Variables must be
// selected". Constraints are immutable once created and are discarded
// by whichever problem consumed them once it is solved.
package constraint

import "sort"

// Constraint means "at least LowerBound of Variables must be selected".
// Variables is kept sorted ascending and duplicate-free.
type Constraint struct {
	Variables  []int
	LowerBound int
}

// AtLeastOne builds a Constraint requiring at least one of vars, the
// degenerate case every cycle- and 2-cycle-derived constraint in this
// solver uses.
func AtLeastOne(vars []int) Constraint {
	return New(vars, 1)
}

// New builds a Constraint requiring at least lowerBound of vars,
// sorting and deduplicating vars.
func New(vars []int, lowerBound int) Constraint {
	sorted := append([]int(nil), vars...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return Constraint{Variables: out, LowerBound: lowerBound}
}

// Satisfied reports whether the constraint is met given the set of
// currently-selected variables.
func (c Constraint) Satisfied(selected map[int]bool) bool {
	count := 0
	for _, v := range c.Variables {
		if selected[v] {
			count++
			if count >= c.LowerBound {
				return true
			}
		}
	}
	return count >= c.LowerBound
}
