package ilpsolve

import (
	"github.com/katalvlaran/dfvs/constraint"
	"gonum.org/v1/gonum/mat"
)

// ilpModel is a ready-to-solve hitting-set ILP: one binary variable
// per entry of vars (in order), upper-bounded at 1, subject to the
// given constraints translated into columns via colOf.
type ilpModel struct {
	vars  []int
	colOf map[int]int
	c     []float64
	g     *mat.Dense
	h     []float64
	whole []bool
}

// buildModel lays out one column per vars[i] and one row per
// constraint (negated to the Gx<=h form Simplex/BNB expect) plus one
// row per variable enforcing x_v <= 1.
func buildModel(vars []int, constraints []constraint.Constraint) *ilpModel {
	n := len(vars)
	colOf := make(map[int]int, n)
	for i, v := range vars {
		colOf[v] = i
	}

	rows := len(constraints) + n
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)

	row := 0
	for _, c := range constraints {
		for _, v := range c.Variables {
			col, ok := colOf[v]
			if !ok {
				continue // variable already forced/removed outside this model
			}
			g.Set(row, col, -1)
		}
		h[row] = -float64(c.LowerBound)
		row++
	}
	for i := 0; i < n; i++ {
		g.Set(row, i, 1)
		h[row] = 1
		row++
	}

	c := make([]float64, n)
	whole := make([]bool, n)
	for i := range c {
		c[i] = 1
		whole[i] = true
	}

	return &ilpModel{vars: vars, colOf: colOf, c: c, g: g, h: h, whole: whole}
}

// addUpperBoundRow appends sum(x) <= k as an extra inequality row,
// used to inject the SA-hitting-set warm start as a pruning bound
// (gonum's public BNB has no warm-start parameter of its own — see
// the grounding ledger entry for this package).
func (m *ilpModel) addUpperBoundRow(k int) {
	rows, cols := m.g.Dims()
	grown := mat.NewDense(rows+1, cols, nil)
	grown.Copy(m.g)
	for i := 0; i < cols; i++ {
		grown.Set(rows, i, 1)
	}
	m.g = grown
	m.h = append(m.h, float64(k))
}

// addConstraintRow appends one more sum(x_v) >= 1 row (as -sum <= -1)
// for a newly discovered cycle, used by the lazy cut loop.
func (m *ilpModel) addConstraintRow(vars []int) {
	rows, cols := m.g.Dims()
	grown := mat.NewDense(rows+1, cols, nil)
	grown.Copy(m.g)
	for _, v := range vars {
		if col, ok := m.colOf[v]; ok {
			grown.Set(rows, col, -1)
		}
	}
	m.g = grown
	m.h = append(m.h, -1)
}
