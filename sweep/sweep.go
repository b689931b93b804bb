// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
)

var (
	// ErrNilBuilder is returned by Run when no builder is supplied.
	ErrNilBuilder = errors.New("sweep: nil builder")

	// ErrNilSolver is returned by Run when no solver is supplied.
	ErrNilSolver = errors.New("sweep: nil solver")
)

// Run solves all NumWeightVectors scenarios and returns them in vector order.
//
// Non-optimal scenarios are results, not errors. The error is non-nil only
// when a plan cannot be built or the solver rejects a model; if ctx is
// canceled mid-run the report is still returned, with the unsolved scenarios
// marked NotSolved, together with ctx.Err().
func Run(ctx context.Context, solver linprog.Solver, b *allocation.Builder, opts ...Option) (*Report, error) {
	if solver == nil {
		return nil, ErrNilSolver
	}
	if b == nil {
		return nil, ErrNilBuilder
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	rep := &Report{
		RunID:   uuid.New(),
		Pairs:   b.Index().Pairs(),
		Results: make([]ScenarioResult, allocation.NumWeightVectors),
	}
	log := o.Logger.With("run", rep.RunID.String())
	log.Info("sweep started", "scenarios", allocation.NumWeightVectors, "workers", o.Workers, "pairs", len(rep.Pairs))
	start := time.Now()

	// Workers write disjoint slots of rep.Results, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for k := 0; k < allocation.NumWeightVectors; k++ {
		w := allocation.FromBits(uint8(k))
		g.Go(func() error {
			res, err := scenario(gctx, solver, b, w, o.SolveTimeout)
			if err != nil {
				return err
			}
			rep.Results[k] = res
			log.Debug("scenario solved", "weights", w.String(), "status", res.Status.String(), "score", res.Score, "elapsed", res.Elapsed)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	rep.Elapsed = time.Since(start)

	c := rep.Counts()
	log.Info("sweep finished", "optimal", c[linprog.Optimal], "infeasible", c[linprog.Infeasible],
		"unbounded", c[linprog.Unbounded], "not_solved", c[linprog.NotSolved], "elapsed", rep.Elapsed)
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	return rep, nil
}

// scenario builds, solves and scores one weight vector.
func scenario(ctx context.Context, solver linprog.Solver, b *allocation.Builder, w allocation.WeightVector, budget time.Duration) (ScenarioResult, error) {
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}
	start := time.Now()

	out, err := allocation.Solve(ctx, solver, b, allocation.MinWeighted(w))
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("sweep: scenario %s: %w", w, err)
	}

	res := ScenarioResult{
		Weights:    w,
		Status:     out.Status,
		Reason:     out.Reason,
		Objective:  out.Objective,
		Allocation: out.Allocation,
		Elapsed:    time.Since(start),
	}
	if !out.Optimal() {
		for i := range res.Improvements {
			res.Improvements[i] = math.NaN()
		}
		res.Mean, res.Variance, res.Score = math.NaN(), math.NaN(), math.NaN()

		return res, nil
	}

	base := b.Baseline()
	for i, k := range indicator.Sustainability {
		res.Improvements[i] = Improvement(out.Realized(k), base.National[i])
	}
	res.Mean, res.Variance, res.Score = Stats(res.Improvements)

	return res, nil
}
