// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a source holds a header but no data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrMissingColumn is returned when a required column header is absent.
	ErrMissingColumn = errors.New("dataset: required column missing")

	// ErrBadValue is returned when a numeric cell cannot be parsed or is NaN/Inf.
	ErrBadValue = errors.New("dataset: invalid numeric value")

	// ErrEmptyID is returned when a row has an empty region or crop identifier.
	ErrEmptyID = errors.New("dataset: empty region or crop identifier")

	// ErrNegativeArea is returned when a row reports a negative harvested area.
	ErrNegativeArea = errors.New("dataset: negative harvested area")

	// ErrDuplicatePair is returned when the same (region, crop) occurs twice.
	ErrDuplicatePair = errors.New("dataset: duplicate region/crop row")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")
)

// RowError pinpoints a problem in a single source row.
// Line is 1-based and counts the header line, so the first data row is line 2.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("dataset: line %d, column %q: %v", e.Line, e.Column, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *RowError) Unwrap() error { return e.Err }

// Row is one region–crop record. Per-hectare fields are intensities; the
// aggregate fields (HarvestedArea, TotalProduction, TotalIncome) are absolute.
type Row struct {
	Region string
	Crop   string

	Yield     float64 // kg/ha
	NetProfit float64 // US$/ha

	HarvestedArea float64 // ha

	GreenWater float64 // m3/ha
	BlueWater  float64 // m3/ha
	GHG        float64 // kg CO2-eq/ha
	Nitrogen   float64 // kg N/ha
	Phosphorus float64 // kg P2O5/ha
	Potassium  float64 // kg K2O/ha
	Pesticides float64 // kg/ha

	TotalProduction float64 // kg
	TotalIncome     float64 // US$
}

// Dataset is an in-memory, read-only table of rows in source order.
type Dataset struct {
	Rows []Row
}

// New wraps rows into a Dataset and validates it.
func New(rows []Row) (*Dataset, error) {
	ds := &Dataset{Rows: rows}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// Regions returns the distinct region identifiers in first-appearance order.
func (d *Dataset) Regions() []string {
	return d.distinct(func(r Row) string { return r.Region })
}

// Crops returns the distinct crop identifiers in first-appearance order.
func (d *Dataset) Crops() []string {
	return d.distinct(func(r Row) string { return r.Crop })
}

func (d *Dataset) distinct(key func(Row) string) []string {
	seen := make(map[string]struct{}, len(d.Rows))
	out := make([]string, 0, len(d.Rows))
	for _, r := range d.Rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}
