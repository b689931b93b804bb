// SPDX-License-Identifier: MIT

package linprog

import "math"

// Solution is the result of solving a Model.
//
// Values and LHS are populated only when Status == Optimal. Reason carries a
// short human-readable cause for non-optimal outcomes ("timeout", solver error
// text, ...).
type Solution struct {
	Status    Status
	Reason    string
	Objective float64
	Values    []float64          // indexed by VarID
	LHS       map[string]float64 // constraint name → realized left-hand side
}

// Optimal reports whether the solution carries a usable optimum.
func (s *Solution) Optimal() bool { return s != nil && s.Status == Optimal }

// Value returns the value of v, or NaN when no optimum is available.
func (s *Solution) Value(v VarID) float64 {
	if !s.Optimal() || int(v) < 0 || int(v) >= len(s.Values) {
		return math.NaN()
	}

	return s.Values[v]
}

// Failed builds a non-optimal Solution with the given status and reason.
func Failed(status Status, reason string) *Solution {
	return &Solution{Status: status, Reason: reason, Objective: math.NaN()}
}

// Complete builds an Optimal Solution for m at point values, evaluating the
// objective and every constraint's left-hand side.
func Complete(m *Model, values []float64) *Solution {
	sol := &Solution{
		Status:    Optimal,
		Objective: m.Objective().Eval(values),
		Values:    append([]float64(nil), values...),
		LHS:       make(map[string]float64, len(m.constraints)),
	}
	for _, c := range m.constraints {
		sol.LHS[c.Name] = c.Expr.Eval(values)
	}

	return sol
}

// Feasible reports whether values satisfy every bound and constraint of m
// within tol (see Constraint.Satisfied for the scaling rule).
func Feasible(m *Model, values []float64, tol float64) bool {
	if len(values) != len(m.vars) {
		return false
	}
	for i, v := range m.vars {
		x := values[i]
		if math.IsNaN(x) || x < v.Lower-tol || x > v.Upper+tol {
			return false
		}
	}
	for _, c := range m.constraints {
		if !c.Satisfied(c.Expr.Eval(values), tol) {
			return false
		}
	}

	return true
}
