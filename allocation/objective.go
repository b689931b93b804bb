// SPDX-License-Identifier: MIT

package allocation

import (
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
)

// Objective is a pluggable objective strategy. Build calls Expression once the
// decision variables exist.
type Objective interface {
	// Name is used as the model name.
	Name() string
	// Sense is the optimization direction.
	Sense() linprog.Sense
	// Expression returns the objective over the plan's variables.
	Expression(p *Plan) *linprog.LinearExpression
}

// MaxProfit maximizes Σ x·area·net profit over every present pair.
func MaxProfit() Objective { return maxProfit{} }

type maxProfit struct{}

func (maxProfit) Name() string         { return "Maximize_Farmers_Income" }
func (maxProfit) Sense() linprog.Sense { return linprog.Maximize }

func (maxProfit) Expression(p *Plan) *linprog.LinearExpression {
	return p.National(indicator.NetProfit)
}

// MinWeighted minimizes Σ_i w[i]·(Σ x·area·indicator_i). An all-zero w yields
// an empty (identically zero) objective; the model then only asks for a
// feasible point.
func MinWeighted(w WeightVector) Objective { return minWeighted{w: w} }

type minWeighted struct{ w WeightVector }

func (o minWeighted) Name() string         { return "MultiObjectiveOptimization_" + o.w.String() }
func (o minWeighted) Sense() linprog.Sense { return linprog.Minimize }

func (o minWeighted) Expression(p *Plan) *linprog.LinearExpression {
	e := linprog.NewExpr()
	for i, k := range indicator.Sustainability {
		if o.w[i] {
			e.AddExpr(p.National(k), 1)
		}
	}

	return e
}

// Weights exposes the weight vector of a MinWeighted objective.
func Weights(o Objective) (WeightVector, bool) {
	mw, ok := o.(minWeighted)

	return mw.w, ok
}
