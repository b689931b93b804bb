// SPDX-License-Identifier: MIT

// Package indicator builds the sparse per-region, per-crop lookup tables the
// allocation model is assembled from.
//
// For every Kind (yield, net profit, harvested area, the two water footprints,
// GHG emissions, the three fertilizers and pesticides) the Index answers
//
//	Value(kind, region, crop) → (v, ok)
//
// where ok is true iff the (region, crop) pair occurs in the source dataset.
// A missing pair means "not grown here"; it is never reported as a zero value,
// so callers omit the term instead of adding a zero-coefficient one.
//
// The Index also carries the aggregate harvested area of each region (the sum
// over that region's rows) and the observed share of that area per crop.
//
// An Index is immutable once built and safe for concurrent readers.
package indicator
