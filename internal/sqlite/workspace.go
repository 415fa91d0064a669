package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tallyworks/shopledger/internal/workspace"
)

// currencyFormat is the number format applied by FormatCurrency.
const currencyFormat = "$#,##0.00"

// Workspace implements workspace.Workspace backed by SQLite.
type Workspace struct {
	db *DB
}

// NewWorkspace creates a new SQLite-backed workspace.
func NewWorkspace(db *DB) *Workspace {
	return &Workspace{db: db}
}

// ReadTable returns all populated rows of a table in order. Gaps between
// populated rows come back as empty rows so that slice index n holds row
// n+1, matching the host's dense table view.
func (w *Workspace) ReadTable(ctx context.Context, table string) ([][]any, error) {
	exists, err := w.tableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, workspace.ErrTableNotFound
	}

	query := `SELECT row_num, cells FROM sheet_rows WHERE sheet = ? ORDER BY row_num`
	rows, err := w.db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	var result [][]any
	for rows.Next() {
		var rowNum int
		var cellsJSON string
		if err := rows.Scan(&rowNum, &cellsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var cells []any
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("failed to decode row %d of %s: %w", rowNum, table, err)
		}

		for len(result) < rowNum-1 {
			result = append(result, []any{})
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate table %s: %w", table, err)
	}

	return result, nil
}

// WriteRow replaces the full contents of a row, creating the table if needed.
func (w *Workspace) WriteRow(ctx context.Context, table string, rowNumber int, values []any) error {
	if rowNumber < 1 {
		return workspace.ErrInvalidRow
	}
	if err := w.ensureSheet(ctx, table); err != nil {
		return err
	}
	return w.writeRow(ctx, table, rowNumber, values)
}

// AppendRow writes values one past the last populated row.
func (w *Workspace) AppendRow(ctx context.Context, table string, values []any) (int, error) {
	if err := w.ensureSheet(ctx, table); err != nil {
		return 0, err
	}

	var next int
	query := `SELECT COALESCE(MAX(row_num), 0) + 1 FROM sheet_rows WHERE sheet = ?`
	if err := w.db.QueryRowContext(ctx, query, table).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to find next row of %s: %w", table, err)
	}

	if err := w.writeRow(ctx, table, next, values); err != nil {
		return 0, err
	}
	return next, nil
}

// EnsureTable creates the table with a header row if it doesn't exist.
func (w *Workspace) EnsureTable(ctx context.Context, table string, header []any) error {
	exists, err := w.tableExists(ctx, table)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := w.ensureSheet(ctx, table); err != nil {
		return err
	}
	return w.writeRow(ctx, table, 1, header)
}

// AnnotateCell attaches a note to a cell, replacing any prior note.
func (w *Workspace) AnnotateCell(ctx context.Context, table string, row, col int, note string) error {
	query := `
		INSERT INTO cell_notes (sheet, row_num, col_num, note)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (sheet, row_num, col_num) DO UPDATE SET note = excluded.note
	`
	if _, err := w.db.ExecContext(ctx, query, table, row, col, note); err != nil {
		return fmt.Errorf("failed to annotate cell: %w", err)
	}
	return nil
}

// FormatCurrency applies the currency number format to a cell.
func (w *Workspace) FormatCurrency(ctx context.Context, table string, row, col int) error {
	query := `
		INSERT INTO cell_formats (sheet, row_num, col_num, format)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (sheet, row_num, col_num) DO UPDATE SET format = excluded.format
	`
	if _, err := w.db.ExecContext(ctx, query, table, row, col, currencyFormat); err != nil {
		return fmt.Errorf("failed to format cell: %w", err)
	}
	return nil
}

// CellNote returns the note attached to a cell, empty if none. Used by
// tests to verify annotation side effects.
func (w *Workspace) CellNote(ctx context.Context, table string, row, col int) (string, error) {
	var note string
	query := `SELECT note FROM cell_notes WHERE sheet = ? AND row_num = ? AND col_num = ?`
	err := w.db.QueryRowContext(ctx, query, table, row, col).Scan(&note)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cell note: %w", err)
	}
	return note, nil
}

// CellFormat returns the number format applied to a cell, empty if none.
func (w *Workspace) CellFormat(ctx context.Context, table string, row, col int) (string, error) {
	var format string
	query := `SELECT format FROM cell_formats WHERE sheet = ? AND row_num = ? AND col_num = ?`
	err := w.db.QueryRowContext(ctx, query, table, row, col).Scan(&format)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cell format: %w", err)
	}
	return format, nil
}

func (w *Workspace) tableExists(ctx context.Context, table string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sheets WHERE name = ?`
	if err := w.db.QueryRowContext(ctx, query, table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return count > 0, nil
}

func (w *Workspace) ensureSheet(ctx context.Context, table string) error {
	query := `INSERT OR IGNORE INTO sheets (name) VALUES (?)`
	if _, err := w.db.ExecContext(ctx, query, table); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (w *Workspace) writeRow(ctx context.Context, table string, rowNumber int, values []any) error {
	cells, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}
	query := `
		INSERT INTO sheet_rows (sheet, row_num, cells)
		VALUES (?, ?, ?)
		ON CONFLICT (sheet, row_num) DO UPDATE SET cells = excluded.cells
	`
	if _, err := w.db.ExecContext(ctx, query, table, rowNumber, string(cells)); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNumber, table, err)
	}
	return nil
}
