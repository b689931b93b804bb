// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Source column headers.
const (
	colRegion          = "Regions"
	colCrop            = "Crop"
	colYield           = "Yield (kg/ha)"
	colNetProfit       = "Net Profit (US$/ha)"
	colHarvestedArea   = "Harvested Area (ha)"
	colGreenWater      = "Green Water (m3/ha)"
	colBlueWater       = "Blue Water (m3/ha)"
	colGHG             = "GHGs (kg eq CO2/ha)"
	colNitrogen        = "Nitrogen (kg N/ha)"
	colPhosphorus      = "Phosphorus (kg P2O5/ha)"
	colPotassium       = "Potash (kg K2O/ha)"
	colPesticides      = "Pesticides (kg/ha)"
	colTotalProduction = "Total Production (kg)"
	colTotalIncome     = "Total income (US$)"
)

// numericColumn binds a header to the Row field it fills.
type numericColumn struct {
	header string
	field  func(*Row) *float64
}

var numericColumns = []numericColumn{
	{colYield, func(r *Row) *float64 { return &r.Yield }},
	{colNetProfit, func(r *Row) *float64 { return &r.NetProfit }},
	{colHarvestedArea, func(r *Row) *float64 { return &r.HarvestedArea }},
	{colGreenWater, func(r *Row) *float64 { return &r.GreenWater }},
	{colBlueWater, func(r *Row) *float64 { return &r.BlueWater }},
	{colGHG, func(r *Row) *float64 { return &r.GHG }},
	{colNitrogen, func(r *Row) *float64 { return &r.Nitrogen }},
	{colPhosphorus, func(r *Row) *float64 { return &r.Phosphorus }},
	{colPotassium, func(r *Row) *float64 { return &r.Potassium }},
	{colPesticides, func(r *Row) *float64 { return &r.Pesticides }},
	{colTotalProduction, func(r *Row) *float64 { return &r.TotalProduction }},
	{colTotalIncome, func(r *Row) *float64 { return &r.TotalIncome }},
}

// Headers returns the required column headers in canonical order.
func Headers() []string {
	out := make([]string, 0, 2+len(numericColumns))
	out = append(out, colRegion, colCrop)
	for _, c := range numericColumns {
		out = append(out, c.header)
	}

	return out
}

// normalizeHeader lowercases and collapses inner whitespace so that
// "Net  profit (US$/ha) " and "Net Profit (US$/ha)" match.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// columnLayout maps each required header to its position in a source header line.
type columnLayout struct {
	region  int
	crop    int
	numeric []int // parallel to numericColumns
}

// resolveLayout locates every required header in header.
func resolveLayout(header []string) (columnLayout, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		k := normalizeHeader(h)
		if _, dup := pos[k]; !dup {
			pos[k] = i
		}
	}
	find := func(name string) (int, error) {
		i, ok := pos[normalizeHeader(name)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}

		return i, nil
	}

	var (
		lay columnLayout
		err error
	)
	if lay.region, err = find(colRegion); err != nil {
		return columnLayout{}, err
	}
	if lay.crop, err = find(colCrop); err != nil {
		return columnLayout{}, err
	}
	lay.numeric = make([]int, len(numericColumns))
	for i, c := range numericColumns {
		if lay.numeric[i], err = find(c.header); err != nil {
			return columnLayout{}, err
		}
	}

	return lay, nil
}

// parseRecord converts one source record into a Row. Cells beyond the end of a
// short record are treated as empty; an empty numeric cell is an error.
func (lay columnLayout) parseRecord(rec []string, line int) (Row, error) {
	cell := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}

		return ""
	}

	var r Row
	r.Region = cell(lay.region)
	r.Crop = cell(lay.crop)
	for i, c := range numericColumns {
		raw := cell(lay.numeric[i])
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return Row{}, &RowError{Line: line, Column: c.header, Err: ErrBadValue}
		}
		*c.field(&r) = v
	}

	return r, nil
}

// isBlank reports whether every cell of rec is whitespace.
func isBlank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}

	return true
}
