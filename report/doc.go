// SPDX-License-Identifier: MIT

// Package report writes result tables as CSV or Excel workbooks.
//
// A Table is a header plus string rows; producers (single-objective outcomes,
// sweep reports) format their numbers with FormatFloat so the CSV and XLSX
// renderings agree. WriteXLSX stores cells that parse as finite numbers as
// numeric cells and everything else as text.
package report
