// SPDX-License-Identifier: MIT

package indicator

import "github.com/katalvlaran/agroshift/dataset"

// Index is the read-only indicator lookup built from a dataset.
type Index struct {
	regions []string            // first-appearance order
	crops   []string            // first-appearance order
	cropsIn map[string][]string // region → crops present, in source order
	area    map[string]float64  // region → Σ harvested area

	// values[kind][region][crop]; a key exists iff the pair is in the data.
	values [numKinds]map[string]map[string]float64
}

// Build indexes every row of ds.
//
// Complexity: O(n·K) where n is the number of rows and K the number of kinds.
func Build(ds *dataset.Dataset) (*Index, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	idx := &Index{
		regions: ds.Regions(),
		crops:   ds.Crops(),
		cropsIn: make(map[string][]string),
		area:    make(map[string]float64),
	}
	var k Kind
	for k = 0; k < numKinds; k++ {
		idx.values[k] = make(map[string]map[string]float64, len(idx.regions))
	}

	var r dataset.Row
	for _, r = range ds.Rows {
		idx.cropsIn[r.Region] = append(idx.cropsIn[r.Region], r.Crop)
		idx.area[r.Region] += r.HarvestedArea
		for k = 0; k < numKinds; k++ {
			sub, ok := idx.values[k][r.Region]
			if !ok {
				sub = make(map[string]float64)
				idx.values[k][r.Region] = sub
			}
			sub[r.Crop] = Of(r, k)
		}
	}

	return idx, nil
}

// Value returns indicator k for (region, crop). ok is false when the crop is
// not grown in the region or k is unknown.
func (x *Index) Value(k Kind, region, crop string) (float64, bool) {
	if !k.Valid() {
		return 0, false
	}
	sub, ok := x.values[k][region]
	if !ok {
		return 0, false
	}
	v, ok := sub[crop]

	return v, ok
}

// Has reports whether crop is grown in region.
func (x *Index) Has(region, crop string) bool {
	_, ok := x.Value(Yield, region, crop)

	return ok
}

// Area returns the aggregate harvested area of region (0 for unknown regions).
func (x *Index) Area(region string) float64 { return x.area[region] }

// Share returns the observed fraction of region's area planted with crop.
// ok is false when the pair is absent or the region has zero area.
func (x *Index) Share(region, crop string) (float64, bool) {
	a, ok := x.Value(HarvestedArea, region, crop)
	if !ok || x.area[region] == 0 {
		return 0, false
	}

	return a / x.area[region], true
}

// Regions returns a copy of the region identifiers in source order.
func (x *Index) Regions() []string { return append([]string(nil), x.regions...) }

// Crops returns a copy of the crop identifiers in source order.
func (x *Index) Crops() []string { return append([]string(nil), x.crops...) }

// CropsIn returns a copy of the crops grown in region, in source order.
func (x *Index) CropsIn(region string) []string {
	return append([]string(nil), x.cropsIn[region]...)
}

// Pairs lists every present (region, crop) pair, region-major in source order.
// The order is stable across calls and is the column order of result tables.
func (x *Index) Pairs() []Pair {
	out := make([]Pair, 0, len(x.regions)*2)
	for _, r := range x.regions {
		for _, c := range x.cropsIn[r] {
			out = append(out, Pair{Region: r, Crop: c})
		}
	}

	return out
}
