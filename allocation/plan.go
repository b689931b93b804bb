// SPDX-License-Identifier: MIT

package allocation

import (
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
)

// Plan is one allocation model together with the lookups needed to read its
// solution. Plans are never shared between solves.
type Plan struct {
	Model     *linprog.Model
	Objective Objective

	idx   *indicator.Index
	pairs []indicator.Pair
	vars  map[indicator.Pair]linprog.VarID
}

// Pairs returns the present pairs in variable order.
func (p *Plan) Pairs() []indicator.Pair { return append([]indicator.Pair(nil), p.pairs...) }

// Var returns the variable of (region, crop); ok is false for absent pairs.
func (p *Plan) Var(region, crop string) (linprog.VarID, bool) {
	id, ok := p.vars[indicator.Pair{Region: region, Crop: crop}]

	return id, ok
}

// National returns Σ over every present pair of x·area_r·indicator_k.
func (p *Plan) National(k indicator.Kind) *linprog.LinearExpression {
	e := linprog.NewExpr()
	for _, pr := range p.pairs {
		p.addTerm(e, k, pr.Region, pr.Crop)
	}

	return e
}

// Regional returns Σ over the crops of region of x·area_r·indicator_k.
func (p *Plan) Regional(k indicator.Kind, region string) *linprog.LinearExpression {
	e := linprog.NewExpr()
	for _, c := range p.idx.CropsIn(region) {
		p.addTerm(e, k, region, c)
	}

	return e
}

// addTerm adds x[r,c]·area_r·indicator_k[r,c] to e when the pair is present.
func (p *Plan) addTerm(e *linprog.LinearExpression, k indicator.Kind, region, crop string) {
	v, ok := p.idx.Value(k, region, crop)
	if !ok {
		return
	}
	id, ok := p.vars[indicator.Pair{Region: region, Crop: crop}]
	if !ok {
		return
	}
	e.Add(id, v*p.idx.Area(region))
}
