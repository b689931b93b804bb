// SPDX-License-Identifier: MIT

package allocation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/agroshift/baseline"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
)

var (
	// ErrNilIndex is returned by NewBuilder when no indicator index is supplied.
	ErrNilIndex = errors.New("allocation: nil indicator index")

	// ErrNilBaseline is returned by NewBuilder when no baseline is supplied.
	ErrNilBaseline = errors.New("allocation: nil baseline")

	// ErrNilObjective is returned by Build when no objective is supplied.
	ErrNilObjective = errors.New("allocation: nil objective")

	// ErrNilPlan is returned by Optimize when no plan is supplied.
	ErrNilPlan = errors.New("allocation: nil plan")

	// ErrNilSolver is returned by Optimize when no solver is supplied.
	ErrNilSolver = errors.New("allocation: nil solver")
)

// Builder turns an indicator index and its baseline into allocation models.
// It holds no mutable state: every Build call returns an independent Plan, so
// one Builder may serve concurrent callers.
type Builder struct {
	idx  *indicator.Index
	base *baseline.Baseline
}

// NewBuilder validates its inputs and returns a Builder.
func NewBuilder(idx *indicator.Index, base *baseline.Baseline) (*Builder, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	if base == nil {
		return nil, ErrNilBaseline
	}

	return &Builder{idx: idx, base: base}, nil
}

// Index returns the indicator index the builder reads from.
func (b *Builder) Index() *indicator.Index { return b.idx }

// Baseline returns the reference totals the builder constrains against.
func (b *Builder) Baseline() *baseline.Baseline { return b.base }

// VarName is the decision variable name of (region, crop).
func VarName(region, crop string) string { return "Proportion_" + region + "_" + crop }

// NationalName is the name of the national constraint on indicator k.
func NationalName(k indicator.Kind) string { return "Total_" + k.String() }

// RegionalName is the name of the regional constraint on indicator k.
func RegionalName(k indicator.Kind, region string) string {
	return k.String() + "_Constraint_" + region
}

// Build emits a fresh Plan for obj.
//
// Complexity: O(P·K) terms where P is the number of present pairs and K = 7.
func (b *Builder) Build(obj Objective) (*Plan, error) {
	if obj == nil {
		return nil, ErrNilObjective
	}

	p := &Plan{
		Model:     linprog.NewModel(obj.Name(), obj.Sense()),
		Objective: obj,
		idx:       b.idx,
		pairs:     b.idx.Pairs(),
		vars:      make(map[indicator.Pair]linprog.VarID),
	}

	// Stage 1: one variable per present pair, hinted at the observed share.
	p.Model.Hint = make([]float64, 0, len(p.pairs))
	for _, pr := range p.pairs {
		id, err := p.Model.AddVariable(VarName(pr.Region, pr.Crop), 0, 1)
		if err != nil {
			return nil, fmt.Errorf("allocation: variable %s: %w", pr, err)
		}
		p.vars[pr] = id
		share, _ := b.idx.Share(pr.Region, pr.Crop)
		p.Model.Hint = append(p.Model.Hint, share)
	}

	// Stage 2: constraint families in their fixed order.
	steps := []func(*Plan) error{
		b.production,
		b.regionTotals,
		b.nationalIncome,
		b.regionalIncome,
		b.nationalIndicators,
		b.regionalIndicators,
	}
	for _, step := range steps {
		if err := step(p); err != nil {
			return nil, err
		}
	}

	// Stage 3: objective.
	if err := p.Model.SetObjective(obj.Expression(p)); err != nil {
		return nil, fmt.Errorf("allocation: objective %s: %w", obj.Name(), err)
	}

	return p, nil
}

// production: Σ_r x[r,c]·area_r·yield[r,c] ≥ target_c for every crop.
func (b *Builder) production(p *Plan) error {
	for _, c := range b.idx.Crops() {
		e := linprog.NewExpr()
		for _, r := range b.idx.Regions() {
			p.addTerm(e, indicator.Yield, r, c)
		}
		if err := p.Model.AddConstraint("Production_"+c, e, linprog.GE, b.base.ProductionTarget[c]); err != nil {
			return fmt.Errorf("allocation: production %s: %w", c, err)
		}
	}

	return nil
}

// regionTotals: Σ_c x[r,c] ≤ 1 for every region. Area may be left fallow.
func (b *Builder) regionTotals(p *Plan) error {
	for _, r := range b.idx.Regions() {
		e := linprog.NewExpr()
		for _, c := range b.idx.CropsIn(r) {
			e.Add(p.vars[indicator.Pair{Region: r, Crop: c}], 1)
		}
		if err := p.Model.AddConstraint("Region_"+r+"_Total", e, linprog.LE, 1); err != nil {
			return fmt.Errorf("allocation: region total %s: %w", r, err)
		}
	}

	return nil
}

func (b *Builder) nationalIncome(p *Plan) error {
	if err := p.Model.AddConstraint("Total_Income", p.National(indicator.NetProfit), linprog.GE, b.base.NationalIncome()); err != nil {
		return fmt.Errorf("allocation: national income: %w", err)
	}

	return nil
}

func (b *Builder) regionalIncome(p *Plan) error {
	for _, r := range b.idx.Regions() {
		if err := p.Model.AddConstraint("Income_Constraint_"+r, p.Regional(indicator.NetProfit, r), linprog.GE, b.base.RegionIncome[r]); err != nil {
			return fmt.Errorf("allocation: income %s: %w", r, err)
		}
	}

	return nil
}

func (b *Builder) nationalIndicators(p *Plan) error {
	for i, k := range indicator.Sustainability {
		if err := p.Model.AddConstraint(NationalName(k), p.National(k), linprog.LE, b.base.National[i]); err != nil {
			return fmt.Errorf("allocation: national %s: %w", k, err)
		}
	}

	return nil
}

// regionalIndicators is region-major: all seven indicators of a region are
// emitted before the next region.
func (b *Builder) regionalIndicators(p *Plan) error {
	for _, r := range b.idx.Regions() {
		totals := b.base.Regional[r]
		for i, k := range indicator.Sustainability {
			if err := p.Model.AddConstraint(RegionalName(k, r), p.Regional(k, r), linprog.LE, totals[i]); err != nil {
				return fmt.Errorf("allocation: regional %s: %w", k, err)
			}
		}
	}

	return nil
}
