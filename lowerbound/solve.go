package lowerbound

import (
	"math"

	"github.com/katalvlaran/dfvs/constraint"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// solveRelaxation solves min sum(x) s.t. for each constraint c,
// sum_{v in c.Variables} x_v >= c.LowerBound, and 0 <= x_v <= 1, over
// the n variables 0..n-1. Returns floor(LP) — a valid lower bound on
// any integral hitting set (and hence on the DFVS) because the
// integral optimum can never be smaller than its LP relaxation.
func solveRelaxation(n int, constraints []constraint.Constraint) int {
	if n == 0 || len(constraints) == 0 {
		return 0
	}

	rows := len(constraints) + n
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)

	row := 0
	for _, c := range constraints {
		for _, v := range c.Variables {
			g.Set(row, v, -1)
		}
		h[row] = -float64(c.LowerBound)
		row++
	}
	for v := 0; v < n; v++ {
		g.Set(row, v, 1)
		h[row] = 1
		row++
	}

	c := make([]float64, n)
	for i := range c {
		c[i] = 1
	}

	// Every constraint here is already of the "<=" slack-friendly form
	// (negated so it reads as a standard Gx<=h row), so g/h alone form
	// the full constraint matrix Simplex needs — there is no separate
	// equality block to stack in.
	optF, _, _, err := lp.Simplex(nil, c, g, h, 1e-10)
	if err != nil {
		// Infeasible or numerically degenerate: fall back to the
		// trivially-true bound of 0 rather than propagating an error
		// through every caller — a lower bound of 0 is always valid,
		// just not useful.
		return 0
	}
	return int(math.Floor(optF + 1e-9))
}
