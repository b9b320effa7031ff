// Package sheets abstracts the spreadsheet backing the master student roster,
// the reservation list and the per-meal serving logs.
package sheets

import (
	"context"
)

// Client is the abstraction for spreadsheet access. Implementations read and
// append worksheet rows as plain string cells.
//
//go:generate mockgen -package mocksheets -source=interface.go -destination=mock/mocksheets.go *
type Client interface {
	// Values returns all rows of the named worksheet, including the header
	// row. Cells are returned as strings.
	Values(ctx context.Context, worksheet string) ([][]string, error)
	// Append appends the given rows after the last non-empty row of the named
	// worksheet.
	Append(ctx context.Context, worksheet string, rows [][]string) error
}
