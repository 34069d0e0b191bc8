// Package store is the tabular-store collaborator: a named-sheet, append-row
// interface over the shared knowledge workbook. Column order per sheet is a
// versioned contract owned by the constants package.
package store

import "context"

// RowStore appends ordered rows to named sheets. Implementations are
// append-only from this system's perspective.
type RowStore interface {
	// GetOrCreateSheet ensures the sheet exists with the given header row.
	// An existing sheet's rows are preserved.
	GetOrCreateSheet(ctx context.Context, name string, headers []string) error
	// AppendRow appends one ordered row after the last occupied row.
	AppendRow(ctx context.Context, sheet string, values []any) error
}
