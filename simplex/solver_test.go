// SPDX-License-Identifier: MIT

package simplex_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/baseline"
	"github.com/katalvlaran/agroshift/dataset"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/internal/fixture"
	"github.com/katalvlaran/agroshift/linprog"
	"github.com/katalvlaran/agroshift/simplex"
)

const tol = 1e-7

// SolverSuite exercises the gonum-backed adapter on small hand-checked models.
type SolverSuite struct {
	suite.Suite
	solver *simplex.Solver
	ctx    context.Context
}

func (s *SolverSuite) SetupTest() {
	s.solver = simplex.New()
	s.ctx = context.Background()
}

// toy builds: sense c·x  s.t. -x1 + 2x2 ≤ 4, 3x1 + x2 ≤ 9, x ≥ 0.
// Optimum of max x1 + 2x2 is at (2, 3) with value 8.
func toy(sense linprog.Sense) (*linprog.Model, linprog.VarID, linprog.VarID) {
	m := linprog.NewModel("toy", sense)
	x1, _ := m.AddVariable("x1", 0, math.Inf(1))
	x2, _ := m.AddVariable("x2", 0, math.Inf(1))
	_ = m.AddConstraint("c1", linprog.NewExpr().Add(x1, -1).Add(x2, 2), linprog.LE, 4)
	_ = m.AddConstraint("c2", linprog.NewExpr().Add(x1, 3).Add(x2, 1), linprog.LE, 9)

	return m, x1, x2
}

func (s *SolverSuite) TestMaximize() {
	m, x1, x2 := toy(linprog.Maximize)
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x1, 1).Add(x2, 2)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status, sol.Reason)
	s.InDelta(8, sol.Objective, tol)
	s.InDelta(2, sol.Value(x1), tol)
	s.InDelta(3, sol.Value(x2), tol)
	s.InDelta(4, sol.LHS["c1"], tol)
	s.InDelta(9, sol.LHS["c2"], tol)
}

func (s *SolverSuite) TestMinimizeNegated() {
	m, x1, x2 := toy(linprog.Minimize)
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x1, -1).Add(x2, -2)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status, sol.Reason)
	s.InDelta(-8, sol.Objective, tol)
}

// TestBoundsAndGE covers shifted lower bounds, upper-bound rows and GE rows.
func (s *SolverSuite) TestBoundsAndGE() {
	m := linprog.NewModel("bounds", linprog.Minimize)
	x, _ := m.AddVariable("x", 1, 3)
	y, _ := m.AddVariable("y", 0, 1)
	s.Require().NoError(m.AddConstraint("floor", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.GE, 3.5))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 2).Add(y, 1)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status, sol.Reason)
	// y is cheaper: y = 1, x = 2.5 → 6.
	s.InDelta(6, sol.Objective, tol)
	s.InDelta(2.5, sol.Value(x), tol)
	s.InDelta(1, sol.Value(y), tol)
}

func (s *SolverSuite) TestEquality() {
	m := linprog.NewModel("eq", linprog.Maximize)
	x, _ := m.AddVariable("x", 0, 10)
	y, _ := m.AddVariable("y", 0, 10)
	s.Require().NoError(m.AddConstraint("sum", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.EQ, 4))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 1).Add(y, 3)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status, sol.Reason)
	s.InDelta(12, sol.Objective, tol)
	s.InDelta(4, sol.Value(y), tol)
}

func (s *SolverSuite) TestInfeasible() {
	m := linprog.NewModel("infeasible", linprog.Minimize)
	x, _ := m.AddVariable("x", 0, 1)
	s.Require().NoError(m.AddConstraint("too_much", linprog.NewExpr().Add(x, 1), linprog.GE, 2))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 1)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err, "infeasibility is a status, not an error")
	s.Equal(linprog.Infeasible, sol.Status)
	s.True(math.IsNaN(sol.Value(x)))
}

// TestDegenerateVertex pins the feasible set to one point cut by more rows
// than it has variables, so every basis at the optimum is degenerate.
func (s *SolverSuite) TestDegenerateVertex() {
	m := linprog.NewModel("degenerate", linprog.Maximize)
	x, _ := m.AddVariable("x", 0, 1)
	y, _ := m.AddVariable("y", 0, 1)
	s.Require().NoError(m.AddConstraint("cap", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.LE, 1))
	s.Require().NoError(m.AddConstraint("floor", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.GE, 1))
	s.Require().NoError(m.AddConstraint("x_min", linprog.NewExpr().Add(x, 1), linprog.GE, 0.5))
	s.Require().NoError(m.AddConstraint("x_max", linprog.NewExpr().Add(x, 2), linprog.LE, 1))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 1).Add(y, 2)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status, sol.Reason)
	s.InDelta(1.5, sol.Objective, tol)
	s.InDelta(0.5, sol.Value(x), tol)
	s.InDelta(0.5, sol.Value(y), tol)
}

// TestSampleMaxProfit runs a multi-region model whose observed allocation
// sits on dozens of tight ceilings. Every regional income floor binds, so the
// optimum is the observed national income.
func (s *SolverSuite) TestSampleMaxProfit() {
	ds, err := dataset.New(fixture.Sample())
	s.Require().NoError(err)
	idx, err := indicator.Build(ds)
	s.Require().NoError(err)
	base, err := baseline.Compute(ds)
	s.Require().NoError(err)
	b, err := allocation.NewBuilder(idx, base)
	s.Require().NoError(err)
	plan, err := b.Build(allocation.MaxProfit())
	s.Require().NoError(err)
	s.Require().True(linprog.Feasible(plan.Model, plan.Model.Hint, 1e-9))

	out, err := allocation.Optimize(s.ctx, s.solver, plan)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, out.Status, out.Reason)
	s.Empty(out.Violations())
	s.InDelta(base.NationalIncome(), out.Objective, 1e-6*base.NationalIncome())
}

func (s *SolverSuite) TestEmptyRowInfeasible() {
	m := linprog.NewModel("empty-row", linprog.Minimize)
	_, _ = m.AddVariable("x", 0, 1)
	s.Require().NoError(m.AddConstraint("nothing", linprog.NewExpr(), linprog.GE, 1))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Equal(linprog.Infeasible, sol.Status)
}

func (s *SolverSuite) TestUnbounded() {
	m := linprog.NewModel("unbounded", linprog.Maximize)
	x, _ := m.AddVariable("x", 0, math.Inf(1))
	s.Require().NoError(m.AddConstraint("floor", linprog.NewExpr().Add(x, 1), linprog.GE, 1))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 1)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Equal(linprog.Unbounded, sol.Status)
}

func (s *SolverSuite) TestFreeVariableUnbounded() {
	m := linprog.NewModel("free", linprog.Maximize)
	x, _ := m.AddVariable("x", 0, math.Inf(1))
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x, 1)))

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Equal(linprog.Unbounded, sol.Status)
}

// TestConstantObjectiveUsesHint returns the feasible hint untouched.
func (s *SolverSuite) TestConstantObjectiveUsesHint() {
	m := linprog.NewModel("hint", linprog.Minimize)
	x, _ := m.AddVariable("x", 0, 1)
	y, _ := m.AddVariable("y", 0, 1)
	s.Require().NoError(m.AddConstraint("sum", linprog.NewExpr().Add(x, 1).Add(y, 1), linprog.LE, 1))
	m.Hint = []float64{0.3, 0.6}

	sol, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status)
	s.Equal(0.0, sol.Objective)
	s.Equal(0.3, sol.Value(x))
	s.Equal(0.6, sol.Value(y))

	// An infeasible hint falls back to the simplex.
	m.Hint = []float64{1, 1}
	sol, err = s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.Require().Equal(linprog.Optimal, sol.Status)
	s.LessOrEqual(sol.LHS["sum"], 1+tol)
}

func (s *SolverSuite) TestIdempotent() {
	m, x1, x2 := toy(linprog.Maximize)
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x1, 1).Add(x2, 2)))

	first, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	second, err := s.solver.Solve(s.ctx, m)
	s.Require().NoError(err)
	s.InDelta(first.Objective, second.Objective, tol)
}

func (s *SolverSuite) TestInvalidModel() {
	_, err := s.solver.Solve(s.ctx, nil)
	s.ErrorIs(err, linprog.ErrNilModel)
}

func (s *SolverSuite) TestCanceledContext() {
	m, x1, _ := toy(linprog.Maximize)
	s.Require().NoError(m.SetObjective(linprog.NewExpr().Add(x1, 1)))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	sol, err := s.solver.Solve(ctx, m)
	s.Require().NoError(err)
	s.Equal(linprog.NotSolved, sol.Status)
	s.Equal(context.Canceled.Error(), sol.Reason)
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// TestTimeout gives a dense transportation model a budget far below its solve time.
func TestTimeout(t *testing.T) {
	const n = 15
	m := linprog.NewModel("transport", linprog.Minimize)
	ids := make([][]linprog.VarID, n)
	obj := linprog.NewExpr()
	for i := 0; i < n; i++ {
		ids[i] = make([]linprog.VarID, n)
		for j := 0; j < n; j++ {
			ids[i][j], _ = m.AddVariable(fmt.Sprintf("x_%d_%d", i, j), 0, 1)
			obj.Add(ids[i][j], float64((i*7+j*13)%17+1))
		}
	}
	for i := 0; i < n; i++ {
		row, col := linprog.NewExpr(), linprog.NewExpr()
		for j := 0; j < n; j++ {
			row.Add(ids[i][j], 1)
			col.Add(ids[j][i], 1)
		}
		require.NoError(t, m.AddConstraint(fmt.Sprintf("supply_%d", i), row, linprog.EQ, 1))
		require.NoError(t, m.AddConstraint(fmt.Sprintf("demand_%d", i), col, linprog.GE, 1))
	}
	require.NoError(t, m.SetObjective(obj))

	solver := simplex.New(simplex.WithTimeout(time.Nanosecond))
	sol, err := solver.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, linprog.NotSolved, sol.Status)
	require.Equal(t, simplex.ReasonTimeout, sol.Reason)
}

func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { simplex.WithTolerance(-1) })
	require.Panics(t, func() { simplex.WithFeasibilityTol(math.NaN()) })
	require.Panics(t, func() { simplex.WithTimeout(-time.Second) })

	s := simplex.New(simplex.WithTolerance(1e-8), simplex.WithTimeout(time.Second))
	require.Equal(t, 1e-8, s.Options().Tolerance)
	require.Equal(t, time.Second, s.Options().Timeout)
	require.Equal(t, simplex.DefaultFeasibilityTol, s.Options().FeasibilityTol)
}
