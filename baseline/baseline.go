// SPDX-License-Identifier: MIT

// Package baseline computes the observed, pre-optimization totals used as the
// right-hand sides of the allocation model.
//
// All values are pure reductions over the unmodified dataset:
//
//	National[i]         = Σ_rows            indicator_i/ha × harvested area
//	Regional[r][i]      = Σ_rows of r       indicator_i/ha × harvested area
//	ProductionTarget[c] = Σ_rows of crop c  total production
//	RegionIncome[r]     = Σ_rows of r       total income
//
// where i ranges over indicator.Sustainability. A Baseline never changes after
// Compute returns.
package baseline

import (
	"errors"

	"github.com/katalvlaran/agroshift/dataset"
	"github.com/katalvlaran/agroshift/indicator"
)

// ErrNilDataset is returned by Compute when no dataset is supplied.
var ErrNilDataset = errors.New("baseline: nil dataset")

// Totals holds one value per sustainability indicator, in indicator.Sustainability order.
type Totals [indicator.NumSustainability]float64

// Baseline groups the national and regional reference values.
type Baseline struct {
	// Regions lists the regions in first-appearance order. Sums over regions
	// follow it so that they are reproducible to the last bit.
	Regions []string

	National         Totals
	Regional         map[string]Totals
	ProductionTarget map[string]float64
	RegionIncome     map[string]float64
}

// Compute reduces ds into a Baseline.
//
// Complexity: O(n) over the rows.
func Compute(ds *dataset.Dataset) (*Baseline, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	b := &Baseline{
		Regional:         make(map[string]Totals),
		ProductionTarget: make(map[string]float64),
		RegionIncome:     make(map[string]float64),
	}

	var (
		r dataset.Row
		i int
		k indicator.Kind
		v float64
	)
	for _, r = range ds.Rows {
		reg, seen := b.Regional[r.Region]
		if !seen {
			b.Regions = append(b.Regions, r.Region)
		}
		for i, k = range indicator.Sustainability {
			v = indicator.Of(r, k) * r.HarvestedArea
			b.National[i] += v
			reg[i] += v
		}
		b.Regional[r.Region] = reg
		b.ProductionTarget[r.Crop] += r.TotalProduction
		b.RegionIncome[r.Region] += r.TotalIncome
	}

	return b, nil
}

// NationalIncome is the sum of all regional baseline incomes, in Regions order.
func (b *Baseline) NationalIncome() float64 {
	var sum float64
	for _, r := range b.Regions {
		sum += b.RegionIncome[r]
	}

	return sum
}

// NationalOf returns the national total of indicator k; ok is false when k is
// not a sustainability indicator.
func (b *Baseline) NationalOf(k indicator.Kind) (float64, bool) {
	for i, s := range indicator.Sustainability {
		if s == k {
			return b.National[i], true
		}
	}

	return 0, false
}
