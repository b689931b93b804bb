// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadCSV parses a header line followed by data records. Blank lines are skipped.
// The resulting Dataset is validated before being returned.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged trailing cells
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}

	return fromRecords(records)
}

// ReadXLSX parses the given worksheet of an Excel workbook. An empty sheet name
// selects the first sheet of the workbook.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmpty
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheet, err)
	}

	return fromRecords(rows)
}

// Load opens path and dispatches on its extension (.csv, .xlsx, .xlsm).
// sheet is only consulted for workbooks.
func Load(path, sheet string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// fromRecords turns header + records into a validated Dataset.
func fromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	lay, err := resolveLayout(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row, perr := lay.parseRecord(rec, i+2)
		if perr != nil {
			return nil, perr
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{Rows: rows}
	// Line numbers in validation errors count data rows only; skipped blank
	// lines shift them.
	if err = ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}
