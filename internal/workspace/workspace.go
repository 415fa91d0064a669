package workspace

import (
	"context"
	"time"
)

// Workspace is the tabular surface of the host document. Every store
// operation receives one explicitly; there is no ambient "active sheet".
// Rows and columns are 1-based, matching spreadsheet addressing.
type Workspace interface {
	// ReadTable returns all populated rows of a table in order. Row 1 is
	// index 0. Returns ErrTableNotFound if the table does not exist.
	ReadTable(ctx context.Context, table string) ([][]any, error)

	// WriteRow replaces the full contents of a row, creating the table if
	// needed.
	WriteRow(ctx context.Context, table string, rowNumber int, values []any) error

	// AppendRow writes values one past the last populated row and returns
	// the row number written.
	AppendRow(ctx context.Context, table string, values []any) (int, error)

	// EnsureTable creates the table with the given header row if it does
	// not exist yet. No-op when the table is already present.
	EnsureTable(ctx context.Context, table string, header []any) error

	// AnnotateCell attaches a note to a cell, replacing any prior note.
	AnnotateCell(ctx context.Context, table string, row, col int, note string) error

	// FormatCurrency applies the currency number format to a cell.
	FormatCurrency(ctx context.Context, table string, row, col int) error
}

// Clock supplies the current time to components that stamp entries.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
