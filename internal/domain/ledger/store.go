package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/workspace"
)

// Store owns the project ledger table: appends, in-place updates, and the
// per-kind row layout rules. Callers see each operation succeed or fail as
// a whole; a partially written row is never a recognized state.
type Store struct {
	ws     workspace.Workspace
	table  string
	alloc  *Allocator
	logger *slog.Logger
}

// NewStore creates a ledger store over the given project table.
func NewStore(ws workspace.Workspace, table string, logger *slog.Logger) *Store {
	return &Store{
		ws:     ws,
		table:  table,
		alloc:  NewAllocator(ws, table),
		logger: logger,
	}
}

// Allocator exposes the store's ID allocator.
func (s *Store) Allocator() *Allocator {
	return s.alloc
}

// Append writes a new row one past the last populated row, allocating a
// display ID for fabrication items, and applies currency formatting to the
// price column. Returns the row number written.
func (s *Store) Append(ctx context.Context, kind item.Kind, it Item) (int, error) {
	if err := validate(it); err != nil {
		return 0, err
	}

	rows, err := s.ws.ReadTable(ctx, s.table)
	if err != nil && !errors.Is(err, workspace.ErrTableNotFound) {
		return 0, fmt.Errorf("reading ledger: %w", err)
	}
	next := len(rows) + 1

	displayID := ""
	if kind == item.KindFabrication {
		displayID, err = s.alloc.NextFabricationID(ctx)
		if err != nil {
			return 0, fmt.Errorf("allocating display id: %w", err)
		}
	}

	if err := s.writeRow(ctx, kind, next, it, displayID); err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("ledger row appended", "kind", kind, "row", next, "display_id", displayID)
	}
	return next, nil
}

// UpdateAt overwrites the data columns of an existing row. The fabrication
// display ID is re-read from the row and preserved; an empty ID cell is
// treated as corrupted state and repaired with a fresh allocation, logged.
func (s *Store) UpdateAt(ctx context.Context, rowNumber int, kind item.Kind, it Item) (int, error) {
	if err := validate(it); err != nil {
		return 0, err
	}
	if rowNumber < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRow, rowNumber)
	}

	rows, err := s.ws.ReadTable(ctx, s.table)
	if err != nil {
		if errors.Is(err, workspace.ErrTableNotFound) {
			return 0, fmt.Errorf("%w: %d", ErrInvalidRow, rowNumber)
		}
		return 0, fmt.Errorf("reading ledger: %w", err)
	}
	if rowNumber > len(rows) {
		return 0, fmt.Errorf("%w: %d exceeds %d rows", ErrInvalidRow, rowNumber, len(rows))
	}

	displayID := ""
	if kind == item.KindFabrication {
		displayID = displayIDAt(rows[rowNumber-1])
		if displayID == "" {
			displayID, err = s.alloc.NextFabricationID(ctx)
			if err != nil {
				return 0, fmt.Errorf("allocating replacement display id: %w", err)
			}
			if s.logger != nil {
				s.logger.Warn("display id missing on update, allocating replacement",
					"row", rowNumber, "display_id", displayID)
			}
		}
	}

	if err := s.writeRow(ctx, kind, rowNumber, it, displayID); err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("ledger row updated", "kind", kind, "row", rowNumber, "display_id", displayID)
	}
	return rowNumber, nil
}

// AnnotateLog replaces the edit-marker note with one naming the log entry
// that produced the row's current contents.
func (s *Store) AnnotateLog(ctx context.Context, kind item.Kind, rowNumber int, logID string) error {
	note := fmt.Sprintf("log %s", logID)
	if err := s.ws.AnnotateCell(ctx, s.table, rowNumber, markerColumn(kind), note); err != nil {
		return fmt.Errorf("annotating edit marker: %w", err)
	}
	return nil
}

func (s *Store) writeRow(ctx context.Context, kind item.Kind, rowNumber int, it Item, displayID string) error {
	values, err := encodeRow(kind, it, displayID)
	if err != nil {
		return err
	}
	if err := s.ws.WriteRow(ctx, s.table, rowNumber, values); err != nil {
		return fmt.Errorf("writing ledger row: %w", err)
	}
	if err := s.ws.FormatCurrency(ctx, s.table, rowNumber, priceColumn(kind)); err != nil {
		return fmt.Errorf("formatting price cell: %w", err)
	}
	return nil
}

func validate(it Item) error {
	if it.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if it.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: total price is negative", ErrInvalidInput)
	}
	return nil
}
