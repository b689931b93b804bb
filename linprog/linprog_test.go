// SPDX-License-Identifier: MIT

package linprog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/agroshift/linprog"
)

func TestExpr_AddAndEval(t *testing.T) {
	var e linprog.LinearExpression // zero value is usable
	e.Add(2, 3).Add(0, 1).Add(2, -1)

	assert.Equal(t, 2, e.Len())
	c, ok := e.Coeff(2)
	require.True(t, ok)
	assert.Equal(t, 2.0, c)
	_, ok = e.Coeff(1)
	assert.False(t, ok)

	assert.Equal(t, []linprog.Term{{Var: 0, Coeff: 1}, {Var: 2, Coeff: 2}}, e.Terms())
	assert.Equal(t, 1.0*4+2.0*5, e.Eval([]float64{4, 100, 5}))

	f := linprog.NewExpr().AddExpr(&e, -2)
	assert.Equal(t, []linprog.Term{{Var: 0, Coeff: -2}, {Var: 2, Coeff: -4}}, f.Terms())

	g := e.Clone()
	g.Add(0, 10)
	c, _ = e.Coeff(0)
	assert.Equal(t, 1.0, c, "clone must be detached")

	var nilExpr *linprog.LinearExpression
	assert.Equal(t, 0, nilExpr.Len())
	assert.Equal(t, 0.0, nilExpr.Eval([]float64{1}))
}

func TestModel_Build(t *testing.T) {
	m := linprog.NewModel("toy", linprog.Maximize)
	x, err := m.AddVariable("x", 0, 1)
	require.NoError(t, err)
	y, err := m.AddVariable("y", 0, math.Inf(1))
	require.NoError(t, err)

	_, err = m.AddVariable("x", 0, 1)
	require.ErrorIs(t, err, linprog.ErrDuplicateName)
	_, err = m.AddVariable("bad", 2, 1)
	require.ErrorIs(t, err, linprog.ErrBadBounds)
	_, err = m.AddVariable("nan", math.NaN(), 1)
	require.ErrorIs(t, err, linprog.ErrBadBounds)

	require.NoError(t, m.AddConstraint("cap", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.LE, 4))
	err = m.AddConstraint("cap", linprog.NewExpr().Add(x, 1), linprog.LE, 4)
	require.ErrorIs(t, err, linprog.ErrDuplicateName)
	err = m.AddConstraint("ghost", linprog.NewExpr().Add(7, 1), linprog.LE, 4)
	require.ErrorIs(t, err, linprog.ErrUnknownVar)
	err = m.AddConstraint("inf", linprog.NewExpr().Add(x, 1), linprog.LE, math.Inf(1))
	require.ErrorIs(t, err, linprog.ErrBadCoefficient)
	err = m.SetObjective(linprog.NewExpr().Add(x, math.NaN()))
	require.ErrorIs(t, err, linprog.ErrBadCoefficient)

	require.NoError(t, m.SetObjective(linprog.NewExpr().Add(x, 2).Add(y, 1)))
	assert.Equal(t, 2, m.NumVars())
	assert.Len(t, m.Constraints(), 1)

	v, ok := m.Var("y")
	require.True(t, ok)
	assert.Equal(t, y, v.ID)
	c, ok := m.Constraint("cap")
	require.True(t, ok)
	assert.Equal(t, linprog.LE, c.Cmp)

	require.NoError(t, m.Validate())
	m.Hint = []float64{1}
	require.ErrorIs(t, m.Validate(), linprog.ErrHintLength)

	var nilModel *linprog.Model
	require.ErrorIs(t, nilModel.Validate(), linprog.ErrNilModel)
}

func TestConstraint_Satisfied(t *testing.T) {
	le := linprog.Constraint{Cmp: linprog.LE, RHS: 100}
	assert.True(t, le.Satisfied(100, 0))
	assert.True(t, le.Satisfied(100.00001, 1e-6), "tolerance scales with |rhs|")
	assert.False(t, le.Satisfied(100.1, 1e-6))

	ge := linprog.Constraint{Cmp: linprog.GE, RHS: 0}
	assert.True(t, ge.Satisfied(-1e-7, 1e-6))
	assert.False(t, ge.Satisfied(-1e-3, 1e-6))

	eq := linprog.Constraint{Cmp: linprog.EQ, RHS: 5}
	assert.True(t, eq.Satisfied(5, 0))
	assert.False(t, eq.Satisfied(5.1, 1e-6))
}

func TestCompleteAndFeasible(t *testing.T) {
	m := linprog.NewModel("toy", linprog.Minimize)
	x, _ := m.AddVariable("x", 0, 1)
	y, _ := m.AddVariable("y", 0, 1)
	require.NoError(t, m.AddConstraint("sum", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.GE, 1))
	require.NoError(t, m.SetObjective(linprog.NewExpr().Add(x, 3).Add(y, 1)))

	sol := linprog.Complete(m, []float64{0.25, 0.75})
	assert.True(t, sol.Optimal())
	assert.Equal(t, 1.5, sol.Objective)
	assert.Equal(t, 1.0, sol.LHS["sum"])
	assert.Equal(t, 0.75, sol.Value(y))

	assert.True(t, linprog.Feasible(m, []float64{0.5, 0.5}, 1e-9))
	assert.False(t, linprog.Feasible(m, []float64{0.2, 0.2}, 1e-9), "violates sum")
	assert.False(t, linprog.Feasible(m, []float64{1.5, 0}, 1e-9), "violates bound")
	assert.False(t, linprog.Feasible(m, []float64{1}, 1e-9), "wrong length")

	failed := linprog.Failed(linprog.Infeasible, "no point")
	assert.False(t, failed.Optimal())
	assert.True(t, math.IsNaN(failed.Value(x)))
	assert.Equal(t, "Infeasible", failed.Status.String())
	assert.Equal(t, "Not Solved", linprog.NotSolved.String())
	assert.Equal(t, ">=", linprog.GE.String())
	assert.Equal(t, "maximize", linprog.Maximize.String())
}
