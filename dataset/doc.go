// SPDX-License-Identifier: MIT

// Package dataset loads the per-region, per-crop indicator table that feeds the
// allocation optimizer.
//
// One Row describes one (region, crop) pair: agronomic yield, net profit per
// hectare, the observed harvested area, seven per-hectare sustainability
// indicators and two region-invariant aggregates (total production of the crop
// in that region, total farmer income of the row).
//
// Sources:
//
//   - ReadCSV  — comma-separated text with a header line.
//   - ReadXLSX — a worksheet of an Excel workbook (first sheet by default).
//   - Load     — dispatch on file extension (.csv, .xlsx, .xlsm).
//
// Headers are matched case- and whitespace-insensitively against the column
// names of the source study ("Regions", "Yield (kg/ha)", "Potash (kg K2O/ha)",
// ...). Unknown columns are ignored; a missing required column is reported with
// ErrMissingColumn. Parsing problems on individual cells are reported as a
// *RowError carrying the 1-based line and column header.
//
// The package does no aggregation: see packages indicator and baseline.
package dataset
