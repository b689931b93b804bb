// Package agroshift reallocates harvested crop area across regions with linear
// programming, trading farmer income against sustainability.
//
// What is agroshift?
//
//	A small, pure-Go toolkit that:
//		• Reads a per-(region, crop) indicator table from CSV or Excel
//		• Computes the observed national and regional baselines
//		• Builds the allocation LP: production floors, income floors,
//		  regional area balance and indicator ceilings
//		• Maximizes net profit, or minimizes any 0/1-weighted mix of the
//		  seven sustainability indicators
//		• Sweeps all 128 weight vectors on a worker pool and scores each
//		  by mean / variance of the per-indicator improvements
//
// Under the hood, everything is organized into focused subpackages:
//
//	dataset/     — input rows, CSV / XLSX readers, validation
//	indicator/   — sparse (region, crop) indicator index + region areas
//	baseline/    — observed national / regional totals
//	linprog/     — solver-neutral LP model: expressions, constraints, solutions
//	simplex/     — linprog.Solver backed by gonum's Simplex
//	allocation/  — model builder, objective strategies, constraint report
//	sweep/       — trade-off sweep driver, statistics, ranked results
//	report/      — CSV / XLSX table writers
//	config/      — YAML run configuration
//	cmd/agroshift — command-line entry point
//
// Quick example:
//
//	ds, _ := dataset.Load("crops.xlsx", "")
//	idx, _ := indicator.Build(ds)
//	base, _ := baseline.Compute(ds)
//	b, _ := allocation.NewBuilder(idx, base)
//	rep, _ := sweep.Run(ctx, simplex.New(), b, sweep.WithWorkers(8))
//	best, _ := rep.Best()
//
//	go install github.com/katalvlaran/agroshift/cmd/agroshift@latest
package agroshift
