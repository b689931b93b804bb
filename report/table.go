// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrRaggedTable is returned when a row width differs from the header width.
	ErrRaggedTable = errors.New("report: row width differs from header")

	// ErrNoHeader is returned when a table has no header.
	ErrNoHeader = errors.New("report: empty header")

	// ErrUnsupportedFormat is returned by WriteFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("report: unsupported output format")
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Results"

// Table is a rectangular block of cells with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

// Validate checks that the table is rectangular.
func (t Table) Validate() error {
	if len(t.Header) == 0 {
		return ErrNoHeader
	}
	for i, r := range t.Rows {
		if len(r) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRaggedTable, i+1, len(r), len(t.Header))
		}
	}

	return nil
}

// Column returns the index of the named header cell, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// FormatFloat renders v with the shortest representation that round-trips.
// NaN renders as "NaN" and infinities as "+Inf" / "-Inf".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatBool renders b as "1" or "0".
func FormatBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
