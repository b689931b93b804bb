// SPDX-License-Identifier: MIT

package simplex

import (
	"math"
	"time"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the reduced-cost optimality tolerance handed to the
	// simplex iterations.
	DefaultTolerance = 1e-10

	// DefaultFeasibilityTol is the relative tolerance used when checking a
	// hint point and when snapping solution values onto their bounds.
	DefaultFeasibilityTol = 1e-9

	// DefaultTimeout disables the wall-clock budget.
	DefaultTimeout time.Duration = 0
)

const (
	panicToleranceInvalid = "simplex: WithTolerance: tol must be finite and non-negative"
	panicFeasTolInvalid   = "simplex: WithFeasibilityTol: tol must be finite and non-negative"
	panicTimeoutInvalid   = "simplex: WithTimeout: d must be non-negative"
)

// Option configures a Solver.
type Option func(*Options)

// Options is the resolved Solver configuration.
type Options struct {
	Tolerance      float64
	FeasibilityTol float64
	Timeout        time.Duration
}

// DefaultOptions returns the zero-config settings.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		FeasibilityTol: DefaultFeasibilityTol,
		Timeout:        DefaultTimeout,
	}
}

// WithTolerance sets the simplex optimality tolerance.
// Panics on negative or non-finite values.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithFeasibilityTol sets the tolerance for hint checks and bound snapping.
// Panics on negative or non-finite values.
func WithFeasibilityTol(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicFeasTolInvalid)
	}

	return func(o *Options) { o.FeasibilityTol = tol }
}

// WithTimeout bounds the wall-clock time of a single Solve (0 disables).
// Panics on negative durations.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeoutInvalid)
	}

	return func(o *Options) { o.Timeout = d }
}
