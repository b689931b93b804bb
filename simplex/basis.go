// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/agroshift/linprog"
)

const (
	// phaseOneTol bounds the artificial sum, relative to max(1, ‖b‖∞), that
	// still counts as a feasible Phase I optimum.
	phaseOneTol = 1e-9

	// independenceTol is the smallest residual norm, relative to the column
	// norm, of a column accepted into the basis.
	independenceTol = 1e-9

	// degenerateShift lifts zero-valued basic variables off their bound before
	// Phase II. gonum rejects a starting point with any component below -1e-13,
	// which round-off on a degenerate basis routinely produces.
	degenerateShift = 1e-11

	// basisNegTol is the largest negative component accepted, before the shift,
	// in the completed basis.
	basisNegTol = 1e-9
)

var (
	errDependentRows   = errors.New("simplex: constraint rows are linearly dependent")
	errBasisInfeasible = errors.New("simplex: completed basis is not feasible")
)

// startingBasis returns a feasible basis for sf together with the right-hand
// side Phase II must use. A non-nil Solution is a decided outcome instead.
//
//  1. Every row whose slack enters with coefficient +1 starts with that slack
//     basic. If all rows do, the slack basis is feasible as is.
//  2. Every other row gets a unit artificial column, and Phase I minimizes the
//     artificial sum from the slack+artificial basis.
//  3. The structural support of the Phase I optimum is completed to a full
//     basis with independent columns of A, preferring slacks.
//
// Only a positive Phase I optimum reports Infeasible; a Phase I that fails
// numerically is NotSolved.
func startingBasis(sf *standardForm, tol float64) ([]int, []float64, *linprog.Solution) {
	m, n := sf.a.Dims()
	basis := make([]int, m)
	var art []int
	for i, j := range sf.slackOf {
		basis[i] = j
		if j < 0 {
			art = append(art, i)
		}
	}
	if len(art) == 0 {
		return basis, sf.b, nil
	}

	// Phase I on [A | E].
	a1 := mat.NewDense(m, n+len(art), nil)
	a1.Slice(0, m, 0, n).(*mat.Dense).Copy(sf.a)
	c1 := make([]float64, n+len(art))
	for k, i := range art {
		a1.Set(i, n+k, 1)
		c1[n+k] = 1
		basis[i] = n + k
	}
	sum, z, err := lp.Simplex(c1, a1, sf.b, tol, basis)
	if err != nil {
		return nil, nil, linprog.Failed(linprog.NotSolved, "phase I: "+err.Error())
	}
	if sum > phaseOneTol*math.Max(1, floats.Norm(sf.b, math.Inf(1))) {
		return nil, nil, linprog.Failed(linprog.Infeasible, fmt.Sprintf("phase I: artificial sum %g > 0", sum))
	}

	basis, err = completeBasis(sf.a, z[:n], sf.slacks)
	if err != nil {
		return nil, nil, linprog.Failed(linprog.NotSolved, err.Error())
	}
	b, err := shiftDegenerate(sf.a, sf.b, basis)
	if err != nil {
		return nil, nil, linprog.Failed(linprog.NotSolved, err.Error())
	}

	return basis, b, nil
}

// completeBasis grows the support of x (columns with x > 0) into m linearly
// independent columns of a: support first, then slacks, then the remaining
// columns in order. Independence is tested against an orthonormal basis of the
// accepted columns, with one reorthogonalization pass.
func completeBasis(a *mat.Dense, x []float64, slacks []int) ([]int, error) {
	m, n := a.Dims()
	basis := make([]int, 0, m)
	taken := make([]bool, n)
	q := make([][]float64, 0, m)

	try := func(j int) {
		if len(basis) == m || taken[j] {
			return
		}
		r := mat.Col(nil, j, a)
		norm := floats.Norm(r, 2)
		for pass := 0; pass < 2; pass++ {
			for _, v := range q {
				floats.AddScaled(r, -floats.Dot(v, r), v)
			}
		}
		rn := floats.Norm(r, 2)
		if rn <= independenceTol*norm {
			return
		}
		floats.Scale(1/rn, r)
		q = append(q, r)
		basis = append(basis, j)
		taken[j] = true
	}

	for j, v := range x {
		if v > 0 {
			try(j)
		}
	}
	for _, j := range slacks {
		try(j)
	}
	for j := 0; j < n; j++ {
		try(j)
	}
	if len(basis) < m {
		return nil, errDependentRows
	}

	return basis, nil
}

// shiftDegenerate solves B·xb = b for the basis columns, raises every
// component below degenerateShift to it and returns b' = B·xb. The perturbed
// problem differs from the original by O(degenerateShift) and starts strictly
// inside gonum's feasibility check.
func shiftDegenerate(a *mat.Dense, b []float64, basis []int) ([]float64, error) {
	m, _ := a.Dims()
	ab := mat.NewDense(m, m, nil)
	col := make([]float64, m)
	for k, j := range basis {
		mat.Col(col, j, a)
		ab.SetCol(k, col)
	}

	var xb mat.VecDense
	if err := xb.SolveVec(ab, mat.NewVecDense(m, b)); err != nil {
		return nil, fmt.Errorf("simplex: completed basis: %w", err)
	}
	v := xb.RawVector().Data
	if floats.Min(v) < -basisNegTol {
		return nil, errBasisInfeasible
	}
	for i := range v {
		v[i] = math.Max(v[i], degenerateShift)
	}

	out := mat.NewVecDense(m, nil)
	out.MulVec(ab, &xb)

	return out.RawVector().Data, nil
}
