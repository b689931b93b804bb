// SPDX-License-Identifier: MIT

package linprog

import (
	"fmt"
	"math"
)

// Variable is a continuous decision variable with box bounds.
// Upper may be +Inf; Lower must be finite.
type Variable struct {
	ID    VarID
	Name  string
	Lower float64
	Upper float64
}

// Constraint is a named linear relation Expr Cmp RHS.
type Constraint struct {
	Name string
	Expr *LinearExpression
	Cmp  Comparator
	RHS  float64
}

// Satisfied reports whether lhs meets the constraint within an absolute tolerance
// scaled by max(1, |RHS|).
func (c Constraint) Satisfied(lhs, tol float64) bool {
	slack := tol * math.Max(1, math.Abs(c.RHS))
	switch c.Cmp {
	case LE:
		return lhs <= c.RHS+slack
	case GE:
		return lhs >= c.RHS-slack
	default:
		return math.Abs(lhs-c.RHS) <= slack
	}
}

// Model is a linear program. Build it with AddVariable / AddConstraint /
// SetObjective; read it through the accessor methods.
type Model struct {
	Name  string
	Sense Sense

	// Hint is an optional point (one value per variable) believed to be
	// feasible. Solvers may use it as a starting point or certificate.
	Hint []float64

	objective   *LinearExpression
	vars        []Variable
	constraints []Constraint
	varNames    map[string]VarID
	conNames    map[string]int
}

// NewModel returns an empty model.
func NewModel(name string, sense Sense) *Model {
	return &Model{
		Name:      name,
		Sense:     sense,
		objective: NewExpr(),
		varNames:  make(map[string]VarID),
		conNames:  make(map[string]int),
	}
}

// AddVariable appends a variable bounded to [lower, upper].
func (m *Model) AddVariable(name string, lower, upper float64) (VarID, error) {
	if _, dup := m.varNames[name]; dup {
		return 0, fmt.Errorf("%w: variable %q", ErrDuplicateName, name)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || lower > upper {
		return 0, fmt.Errorf("%w: %q [%g, %g]", ErrBadBounds, name, lower, upper)
	}
	id := VarID(len(m.vars))
	m.vars = append(m.vars, Variable{ID: id, Name: name, Lower: lower, Upper: upper})
	m.varNames[name] = id

	return id, nil
}

// AddConstraint appends a named constraint. The expression is copied.
func (m *Model) AddConstraint(name string, expr *LinearExpression, cmp Comparator, rhs float64) error {
	if _, dup := m.conNames[name]; dup {
		return fmt.Errorf("%w: constraint %q", ErrDuplicateName, name)
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return fmt.Errorf("%w: rhs of %q", ErrBadCoefficient, name)
	}
	if err := m.checkExpr(expr); err != nil {
		return fmt.Errorf("constraint %q: %w", name, err)
	}
	m.conNames[name] = len(m.constraints)
	m.constraints = append(m.constraints, Constraint{Name: name, Expr: expr.Clone(), Cmp: cmp, RHS: rhs})

	return nil
}

// SetObjective replaces the objective expression (copied).
func (m *Model) SetObjective(expr *LinearExpression) error {
	if err := m.checkExpr(expr); err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	m.objective = expr.Clone()

	return nil
}

func (m *Model) checkExpr(expr *LinearExpression) error {
	for _, t := range expr.Terms() {
		if t.Var < 0 || int(t.Var) >= len(m.vars) {
			return fmt.Errorf("%w: id %d", ErrUnknownVar, t.Var)
		}
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return fmt.Errorf("%w: var %q", ErrBadCoefficient, m.vars[t.Var].Name)
		}
	}

	return nil
}

// Validate re-checks the model invariants that setters cannot enforce alone.
func (m *Model) Validate() error {
	if m == nil {
		return ErrNilModel
	}
	if m.Hint != nil && len(m.Hint) != len(m.vars) {
		return ErrHintLength
	}

	return nil
}

// Objective returns the objective expression. Callers must not mutate it.
func (m *Model) Objective() *LinearExpression { return m.objective }

// NumVars is the number of variables.
func (m *Model) NumVars() int { return len(m.vars) }

// Vars returns the variables in ID order. Callers must not mutate the slice.
func (m *Model) Vars() []Variable { return m.vars }

// Var looks a variable up by name.
func (m *Model) Var(name string) (Variable, bool) {
	id, ok := m.varNames[name]
	if !ok {
		return Variable{}, false
	}

	return m.vars[id], true
}

// Constraints returns the constraints in insertion order. Callers must not mutate the slice.
func (m *Model) Constraints() []Constraint { return m.constraints }

// Constraint looks a constraint up by name.
func (m *Model) Constraint(name string) (Constraint, bool) {
	i, ok := m.conNames[name]
	if !ok {
		return Constraint{}, false
	}

	return m.constraints[i], true
}
