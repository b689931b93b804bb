// SPDX-License-Identifier: MIT

// Package linprog is a solver-neutral description of a linear program.
//
// A Model is plain data: bounded continuous variables, one linear objective
// with a sense, and named linear constraints
//
//	Σ_j a_j·x_j  (≤ | ≥ | =)  rhs
//
// Builders emit Models; any backend implementing Solver turns a Model into a
// Solution. A Solution always carries a Status: infeasibility, unboundedness,
// timeouts and numeric failures are outcomes, not errors.
package linprog

import (
	"context"
	"errors"
)

var (
	// ErrNilModel is returned when a nil *Model is passed to a Solver or Validate.
	ErrNilModel = errors.New("linprog: nil model")

	// ErrDuplicateName is returned when a variable or constraint name is reused.
	ErrDuplicateName = errors.New("linprog: duplicate name")

	// ErrUnknownVar is returned when an expression references a variable that
	// does not belong to the model.
	ErrUnknownVar = errors.New("linprog: unknown variable")

	// ErrBadBounds is returned for a variable with Lower > Upper or NaN bounds.
	ErrBadBounds = errors.New("linprog: invalid variable bounds")

	// ErrBadCoefficient is returned for NaN/Inf coefficients or right-hand sides.
	ErrBadCoefficient = errors.New("linprog: non-finite coefficient")

	// ErrHintLength is returned when Model.Hint does not match the variable count.
	ErrHintLength = errors.New("linprog: hint length mismatch")
)

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Comparator relates a constraint's left-hand side to its right-hand side.
type Comparator int

const (
	LE Comparator = iota // lhs ≤ rhs
	GE                   // lhs ≥ rhs
	EQ                   // lhs = rhs
)

func (c Comparator) String() string {
	switch c {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Status is the outcome class of a solve.
type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Not Solved"
	}
}

// Solver turns a Model into a Solution.
//
// Implementations must not mutate the model, must return a non-nil Solution
// with a Status for every valid model, and reserve the error return for
// invalid input (nil or malformed models). Solve must be safe to call
// concurrently on distinct models.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
