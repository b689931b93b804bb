// SPDX-License-Identifier: MIT

package linprog

import "sort"

// VarID indexes a variable inside its Model (0-based, dense).
type VarID int

// Term is one coefficient·variable product.
type Term struct {
	Var   VarID
	Coeff float64
}

// LinearExpression is a sparse Σ coeff·x mapping. The zero value is an empty
// expression ready for use.
type LinearExpression struct {
	coeffs map[VarID]float64
}

// NewExpr returns an empty expression.
func NewExpr() *LinearExpression {
	return &LinearExpression{coeffs: make(map[VarID]float64)}
}

// Add accumulates coeff onto v and returns e for chaining.
// Adding to an existing variable sums the coefficients.
func (e *LinearExpression) Add(v VarID, coeff float64) *LinearExpression {
	if e.coeffs == nil {
		e.coeffs = make(map[VarID]float64)
	}
	e.coeffs[v] += coeff

	return e
}

// AddExpr accumulates scale·o onto e.
func (e *LinearExpression) AddExpr(o *LinearExpression, scale float64) *LinearExpression {
	if o == nil {
		return e
	}
	for v, c := range o.coeffs {
		e.Add(v, scale*c)
	}

	return e
}

// Coeff returns the coefficient of v and whether v appears in e.
func (e *LinearExpression) Coeff(v VarID) (float64, bool) {
	if e == nil {
		return 0, false
	}
	c, ok := e.coeffs[v]

	return c, ok
}

// Len is the number of variables with a term in e.
func (e *LinearExpression) Len() int {
	if e == nil {
		return 0
	}

	return len(e.coeffs)
}

// Terms returns the terms sorted by VarID.
func (e *LinearExpression) Terms() []Term {
	if e == nil {
		return nil
	}
	out := make([]Term, 0, len(e.coeffs))
	for v, c := range e.coeffs {
		out = append(out, Term{Var: v, Coeff: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })

	return out
}

// Eval computes Σ coeff·values[var]. Variables outside values contribute 0.
func (e *LinearExpression) Eval(values []float64) float64 {
	if e == nil {
		return 0
	}
	var sum float64
	for _, t := range e.Terms() { // sorted for a deterministic summation order
		if int(t.Var) < len(values) {
			sum += t.Coeff * values[t.Var]
		}
	}

	return sum
}

// Clone returns a deep copy of e.
func (e *LinearExpression) Clone() *LinearExpression {
	out := NewExpr()
	if e == nil {
		return out
	}
	for v, c := range e.coeffs {
		out.coeffs[v] = c
	}

	return out
}
