// SPDX-License-Identifier: MIT

// Package simplex is the linprog.Solver backed by gonum's dense Simplex
// implementation (gonum.org/v1/gonum/optimize/convex/lp).
//
// The adapter translates a linprog.Model into standard form
//
//	minimize c·z  s.t.  A·z = b,  z ≥ 0
//
// by shifting every variable onto its lower bound, adding one slack column per
// inequality and one bound row (with slack) per finite upper bound. Maximize
// models are negated. Rows are sign-normalized to b ≥ 0 and scaled to a unit
// largest coefficient.
//
// gonum's Simplex is always handed a starting basis. Rows whose slack can
// carry b start from it; the others get an artificial column and a Phase I
// finds a feasible point, whose support is completed to a basis of A. The
// built-in basis search is never used, since it gives up on the degenerate,
// baseline-tight models this module produces.
//
// Outcomes are mapped onto linprog statuses:
//
//	positive Phase I optimum → Infeasible
//	lp.ErrUnbounded          → Unbounded
//	anything else            → NotSolved (reason = error text)
//	budget exceeded          → NotSolved (reason = "timeout")
//
// Feasibility shortcut: when the objective has no non-zero term and Model.Hint
// satisfies the model, every feasible point is optimal, so the hint itself is
// returned as the Optimal solution without running the simplex.
//
// Timeouts: gonum's Simplex cannot be interrupted. With a budget configured, the
// solve runs on its own goroutine and Solve returns as soon as the budget (or the
// caller's context) expires; the abandoned computation finishes in the background
// and its result is discarded.
package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/agroshift/linprog"
)

// ReasonTimeout is the Solution.Reason of a solve that exceeded its budget.
const ReasonTimeout = "timeout"

// Solver implements linprog.Solver. It is stateless between calls and safe for
// concurrent use.
type Solver struct {
	opts Options
}

var _ linprog.Solver = (*Solver)(nil)

// New returns a Solver configured by opts on top of DefaultOptions.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Solver{opts: o}
}

// Options returns the effective configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve solves m. The returned error is non-nil only for invalid models.
func (s *Solver) Solve(ctx context.Context, m *linprog.Model) (*linprog.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return linprog.Failed(linprog.NotSolved, reason(err)), nil
	}

	// Constant objective + feasible hint ⇒ the hint is optimal.
	if isConstant(m.Objective()) && m.Hint != nil && linprog.Feasible(m, m.Hint, s.opts.FeasibilityTol) {
		return linprog.Complete(m, m.Hint), nil
	}

	if s.opts.Timeout <= 0 && ctx.Done() == nil {
		return s.solve(m), nil
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	done := make(chan *linprog.Solution, 1) // buffered: an abandoned solve must not block
	go func() { done <- s.solve(m) }()

	select {
	case sol := <-done:
		return sol, nil
	case <-ctx.Done():
		return linprog.Failed(linprog.NotSolved, reason(ctx.Err())), nil
	}
}

// reason maps a context error onto a Solution.Reason.
func reason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	return err.Error()
}

// solve runs the standard-form translation and gonum's Simplex synchronously.
// Panics raised by the numeric code are converted into NotSolved outcomes.
func (s *Solver) solve(m *linprog.Model) (sol *linprog.Solution) {
	defer func() {
		if r := recover(); r != nil {
			sol = linprog.Failed(linprog.NotSolved, fmt.Sprintf("simplex: panic: %v", r))
		}
	}()

	sf := toStandard(m)
	if sf.trivial != nil {
		return sf.trivial
	}

	basis, b, failed := startingBasis(sf, s.opts.Tolerance)
	if failed != nil {
		return failed
	}
	_, z, err := lp.Simplex(sf.c, sf.a, b, s.opts.Tolerance, basis)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return linprog.Failed(linprog.Infeasible, err.Error())
	case errors.Is(err, lp.ErrUnbounded):
		return linprog.Failed(linprog.Unbounded, err.Error())
	default:
		return linprog.Failed(linprog.NotSolved, err.Error())
	}

	x := make([]float64, sf.nVars)
	copy(x, sf.lower)
	for k, j := range sf.cols {
		x[j] += z[k]
	}
	snapToBounds(m, x, s.opts.FeasibilityTol)

	return linprog.Complete(m, x)
}

// snapToBounds clamps values that overshoot a bound by at most tol, removing
// round-off such as -1e-17 on a variable with lower bound 0.
func snapToBounds(m *linprog.Model, x []float64, tol float64) {
	for j, v := range m.Vars() {
		if x[j] < v.Lower && x[j] >= v.Lower-tol {
			x[j] = v.Lower
		}
		if x[j] > v.Upper && x[j] <= v.Upper+tol {
			x[j] = v.Upper
		}
	}
}

// isConstant reports whether every objective coefficient is zero.
func isConstant(e *linprog.LinearExpression) bool {
	terms := e.Terms()
	if len(terms) == 0 {
		return true
	}
	c := make([]float64, len(terms))
	for i, t := range terms {
		c[i] = math.Abs(t.Coeff)
	}

	return floats.Max(c) == 0
}
