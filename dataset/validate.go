// SPDX-License-Identifier: MIT

package dataset

import "math"

// Validate checks the table-level contract:
//   - at least one row,
//   - non-empty Region and Crop on every row,
//   - finite numeric fields and a non-negative HarvestedArea,
//   - every (Region, Crop) pair occurs at most once.
//
// Errors are *RowError values wrapping the package sentinels, except ErrEmpty.
//
// Complexity: O(n) time, O(n) extra space for the pair set.
func (d *Dataset) Validate() error {
	if d == nil || len(d.Rows) == 0 {
		return ErrEmpty
	}

	type pair struct{ region, crop string }
	seen := make(map[pair]struct{}, len(d.Rows))

	var (
		i    int
		r    Row
		line int
	)
	for i, r = range d.Rows {
		line = i + 2 // header is line 1
		if r.Region == "" || r.Crop == "" {
			return &RowError{Line: line, Err: ErrEmptyID}
		}
		if name, ok := firstNonFinite(r); !ok {
			return &RowError{Line: line, Column: name, Err: ErrBadValue}
		}
		if r.HarvestedArea < 0 {
			return &RowError{Line: line, Column: colHarvestedArea, Err: ErrNegativeArea}
		}
		k := pair{r.Region, r.Crop}
		if _, dup := seen[k]; dup {
			return &RowError{Line: line, Err: ErrDuplicatePair}
		}
		seen[k] = struct{}{}
	}

	return nil
}

// firstNonFinite reports the header of the first NaN/Inf field, if any.
func firstNonFinite(r Row) (string, bool) {
	for _, c := range numericColumns {
		v := *c.field(&r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return c.header, false
		}
	}

	return "", true
}
