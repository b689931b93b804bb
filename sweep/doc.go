// SPDX-License-Identifier: MIT

// Package sweep runs the sustainability trade-off sweep: one weighted
// minimization per 0/1 weight vector over the seven sustainability indicators,
// 2^7 = 128 scenarios in total.
//
// For each scenario the driver builds a fresh plan, solves it and scores the
// result:
//
//	improvement_i = 1 − realized_i / baseline_i      (i over indicator.Sustainability)
//	mean          = (1/7)·Σ improvement_i
//	variance      = (1/7)·Σ (improvement_i − mean)²   (population variance)
//	score         = mean / variance, or 0 when variance is 0
//
// Scenarios are independent. Run may solve them on a bounded worker pool;
// results are always stored by weight-vector index, so Report.Results is in
// lexicographic vector order (0000000, 0000001, ..., 1111111) regardless of
// completion order.
//
// A scenario that does not reach an optimum keeps its slot: its Status and
// Reason say why, and every numeric field is NaN.
package sweep
