// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/agroshift/linprog"
)

// standardForm is the translation of a linprog.Model into
//
//	minimize  c·z   s.t.  A·z = b,  z ≥ 0
//
// with z = [x − lower | slacks]. Rows are, in order: the model constraints
// that survived pruning, then one upper-bound row per finite-upper variable.
// Every row is sign-normalized so that b ≥ 0 and scaled so that its largest
// structural coefficient is 1; slack coefficients stay ±1.
type standardForm struct {
	c []float64
	a *mat.Dense
	b []float64

	nVars  int       // number of model variables
	cols   []int     // standard column k holds model variable cols[k]
	lower  []float64 // shift applied to every model variable
	offset float64   // constant objective term c·lower (in minimize sense)

	slacks  []int // all slack columns
	slackOf []int // per row: a slack column usable as the starting basic variable, or -1

	// trivial is set when pruning decided the outcome without a solve.
	trivial *linprog.Solution
}

type stdRow struct {
	coeffs []float64 // dense over model variables
	rhs    float64
	slack  float64 // +1 or −1 for inequalities, 0 for equalities
}

// toStandard builds the standard form of m. Empty constraint rows are decided
// on the spot (dropped or declared infeasible); variables that appear in no row
// and have no upper bound are decided as well (pinned at their lower bound or
// the model is unbounded).
func toStandard(m *linprog.Model) *standardForm {
	n := m.NumVars()
	vars := m.Vars()
	sf := &standardForm{nVars: n, lower: make([]float64, n)}

	// Stage 1: objective in minimize sense.
	cx := make([]float64, n)
	for _, t := range m.Objective().Terms() {
		cx[t.Var] = t.Coeff
	}
	if m.Sense == linprog.Maximize {
		for j := range cx {
			cx[j] = -cx[j]
		}
	}
	for j, v := range vars {
		sf.lower[j] = v.Lower
		sf.offset += cx[j] * v.Lower
	}

	// Stage 2: constraint rows shifted by the lower bounds.
	rows := make([]stdRow, 0, len(m.Constraints())+n)
	used := make([]bool, n)
	for _, con := range m.Constraints() {
		row := stdRow{coeffs: make([]float64, n), rhs: con.RHS}
		nonZero := false
		for _, t := range con.Expr.Terms() {
			if t.Coeff == 0 {
				continue
			}
			row.coeffs[t.Var] = t.Coeff
			row.rhs -= t.Coeff * sf.lower[t.Var]
			nonZero = true
		}
		if !nonZero {
			// 0 cmp rhs is a constant statement.
			if !con.Satisfied(0, 0) {
				sf.trivial = linprog.Failed(linprog.Infeasible, "constraint "+con.Name+" has no terms and cannot hold")

				return sf
			}
			continue
		}
		switch con.Cmp {
		case linprog.LE:
			row.slack = 1
		case linprog.GE:
			row.slack = -1
		}
		for j := range row.coeffs {
			if row.coeffs[j] != 0 {
				used[j] = true
			}
		}
		rows = append(rows, row)
	}

	// Stage 3: upper-bound rows.
	for j, v := range vars {
		if math.IsInf(v.Upper, 1) {
			continue
		}
		row := stdRow{coeffs: make([]float64, n), rhs: v.Upper - v.Lower, slack: 1}
		row.coeffs[j] = 1
		used[j] = true
		rows = append(rows, row)
	}

	// Stage 4: free-floating variables (no row references them).
	for j := range used {
		if used[j] {
			continue
		}
		if cx[j] < 0 {
			sf.trivial = linprog.Failed(linprog.Unbounded, "variable "+vars[j].Name+" is unbounded in the objective direction")

			return sf
		}
	}

	// Stage 5: assemble [A_x | S] z = b. Unused variables get no column and
	// stay at their lower bound.
	cols := make([]int, 0, n) // model var → standard column, for used vars
	colOf := make([]int, n)
	for j := range used {
		colOf[j] = -1
		if used[j] {
			colOf[j] = len(cols)
			cols = append(cols, j)
		}
	}
	nSlack := 0
	for _, r := range rows {
		if r.slack != 0 {
			nSlack++
		}
	}
	nRows, nCols := len(rows), len(cols)+nSlack
	if nRows == 0 {
		// Nothing constrains the problem and every variable sits at its lower bound.
		sf.trivial = linprog.Complete(m, append([]float64(nil), sf.lower...))

		return sf
	}
	if nCols < nRows {
		sf.trivial = linprog.Failed(linprog.NotSolved, "more equality rows than columns")

		return sf
	}

	sf.a = mat.NewDense(nRows, nCols, nil)
	sf.b = make([]float64, nRows)
	sf.c = make([]float64, nCols)
	sf.slackOf = make([]int, nRows)
	for k, j := range cols {
		sf.c[k] = cx[j]
	}
	slackCol := len(cols)
	for i, r := range rows {
		sign := 1.0
		if r.rhs < 0 || (r.rhs == 0 && r.slack < 0) {
			sign = -1
		}
		scale := 0.0
		for _, v := range r.coeffs {
			scale = math.Max(scale, math.Abs(v))
		}
		for j, v := range r.coeffs {
			if v != 0 {
				sf.a.Set(i, colOf[j], sign*v/scale)
			}
		}
		sf.b[i] = sign * r.rhs / scale
		sf.slackOf[i] = -1
		if r.slack != 0 {
			sf.a.Set(i, slackCol, sign*r.slack)
			sf.slacks = append(sf.slacks, slackCol)
			if sign*r.slack > 0 {
				sf.slackOf[i] = slackCol
			}
			slackCol++
		}
	}
	sf.cols = cols

	return sf
}
