// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerWidth is the column width applied to every column of a workbook.
const headerWidth = 18

// WriteCSV writes t as RFC 4180 CSV, header first.
func WriteCSV(w io.Writer, t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("report: write csv rows: %w", err)
	}

	return nil
}

// WriteXLSX writes t as a single-sheet workbook. An empty sheet name selects
// DefaultSheet. The header row is bold.
func WriteXLSX(w io.Writer, sheet string, t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("report: sheet %q: %w", sheet, err)
	}

	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("report: header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return fmt.Errorf("report: header: %w", err)
	}
	if err = f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(t.Header))
	if err = f.SetColWidth(sheet, "A", lastCol, headerWidth); err != nil {
		return fmt.Errorf("report: column width: %w", err)
	}

	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(r))
		for j, v := range r {
			values[j] = cellValue(v)
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("report: row %d: %w", i+1, err)
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("report: write xlsx: %w", err)
	}

	return nil
}

// WriteFile writes t to path, choosing the format from the extension
// (.csv, .xlsx).
func WriteFile(path string, t Table) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if ext == ".csv" {
		err = WriteCSV(out, t)
	} else {
		err = WriteXLSX(out, DefaultSheet, t)
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("report: close %s: %w", path, cerr)
	}

	return err
}

// cellValue keeps finite numbers numeric in the workbook.
func cellValue(s string) interface{} {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}

	return v
}
