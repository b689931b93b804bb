// SPDX-License-Identifier: MIT

package allocation

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
	"github.com/katalvlaran/agroshift/report"
)

// CheckTolerance is the relative slack allowed when reporting whether a
// constraint holds at the solution (see linprog.Constraint.Satisfied).
const CheckTolerance = 1e-6

// Check is the realized state of one named constraint.
type Check struct {
	Name      string
	LHS       float64 // NaN when the solve was not optimal
	Cmp       linprog.Comparator
	RHS       float64
	Satisfied bool
}

// Outcome is a solved Plan.
type Outcome struct {
	Status    linprog.Status
	Reason    string
	Objective float64 // NaN unless Status == Optimal

	// Allocation maps every present pair to its chosen proportion. It is nil
	// unless Status == Optimal.
	Allocation map[indicator.Pair]float64

	// Checks lists every constraint in build order.
	Checks []Check

	plan     *Plan
	solution *linprog.Solution
}

// Optimize solves plan with solver and reads the result back. Non-optimal
// outcomes are returned with a nil error; the error is reserved for invalid
// inputs.
func Optimize(ctx context.Context, solver linprog.Solver, plan *Plan) (*Outcome, error) {
	if plan == nil || plan.Model == nil {
		return nil, ErrNilPlan
	}
	if solver == nil {
		return nil, ErrNilSolver
	}

	sol, err := solver.Solve(ctx, plan.Model)
	if err != nil {
		return nil, fmt.Errorf("allocation: solve %s: %w", plan.Model.Name, err)
	}

	out := &Outcome{
		Status:    sol.Status,
		Reason:    sol.Reason,
		Objective: math.NaN(),
		plan:      plan,
		solution:  sol,
	}
	if sol.Optimal() {
		out.Objective = sol.Objective
		out.Allocation = make(map[indicator.Pair]float64, len(plan.pairs))
		for _, pr := range plan.pairs {
			out.Allocation[pr] = sol.Value(plan.vars[pr])
		}
	}

	cons := plan.Model.Constraints()
	out.Checks = make([]Check, len(cons))
	for i, c := range cons {
		ck := Check{Name: c.Name, LHS: math.NaN(), Cmp: c.Cmp, RHS: c.RHS}
		if lhs, ok := sol.LHS[c.Name]; ok {
			ck.LHS = lhs
			ck.Satisfied = c.Satisfied(lhs, CheckTolerance)
		}
		out.Checks[i] = ck
	}

	return out, nil
}

// Solve builds a plan for obj and optimizes it.
func Solve(ctx context.Context, solver linprog.Solver, b *Builder, obj Objective) (*Outcome, error) {
	plan, err := b.Build(obj)
	if err != nil {
		return nil, err
	}

	return Optimize(ctx, solver, plan)
}

// Optimal reports whether the outcome carries a solution.
func (o *Outcome) Optimal() bool { return o != nil && o.Status == linprog.Optimal }

// Plan returns the plan that was solved.
func (o *Outcome) Plan() *Plan { return o.plan }

// Proportion returns the chosen proportion of (region, crop); ok is false for
// absent pairs and non-optimal outcomes.
func (o *Outcome) Proportion(region, crop string) (float64, bool) {
	v, ok := o.Allocation[indicator.Pair{Region: region, Crop: crop}]

	return v, ok
}

// Realized evaluates the national total of indicator k at the solution:
// Σ x·area·indicator_k. It returns NaN unless the outcome is optimal.
func (o *Outcome) Realized(k indicator.Kind) float64 {
	if !o.Optimal() || !k.Valid() {
		return math.NaN()
	}

	return o.plan.National(k).Eval(o.solution.Values)
}

// Violations returns the checks that do not hold.
func (o *Outcome) Violations() []Check {
	var out []Check
	for _, c := range o.Checks {
		if !c.Satisfied {
			out = append(out, c)
		}
	}

	return out
}

// Table renders the single-run report: a status line, the objective, one line
// per decision variable and one line per constraint.
//
//	Kind        | Name                    | Value | Cmp | RHS  | Satisfied
//	status      | Maximize_Farmers_Income | ...
//	objective   | ...
//	variable    | Proportion_A_Wheat      | 0.9   |     |      |
//	constraint  | Production_Wheat        | 1000  | >=  | 1400 | 0
func (o *Outcome) Table() report.Table {
	t := report.Table{Header: []string{"Kind", "Name", "Value", "Cmp", "RHS", "Satisfied"}}
	t.Rows = append(t.Rows,
		[]string{"status", o.plan.Model.Name, o.Status.String(), "", "", ""},
		[]string{"objective", o.plan.Objective.Name(), report.FormatFloat(o.Objective), "", "", ""},
	)
	if o.Reason != "" {
		t.Rows = append(t.Rows, []string{"reason", "", o.Reason, "", "", ""})
	}
	for _, pr := range o.plan.pairs {
		v := math.NaN()
		if o.Optimal() {
			v = o.Allocation[pr]
		}
		t.Rows = append(t.Rows, []string{"variable", VarName(pr.Region, pr.Crop), report.FormatFloat(v), "", "", ""})
	}
	for _, c := range o.Checks {
		t.Rows = append(t.Rows, []string{
			"constraint", c.Name, report.FormatFloat(c.LHS), c.Cmp.String(),
			report.FormatFloat(c.RHS), report.FormatBool(c.Satisfied),
		})
	}

	return t
}
