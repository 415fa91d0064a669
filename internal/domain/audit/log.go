package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/workspace"
)

// Log is the write-once-per-submission journal: one entry per live ledger
// row, overwritten in place on edits. Scans are linear; at the expected
// scale (tens to low hundreds of entries) no index is kept.
type Log struct {
	ws     workspace.Workspace
	clock  workspace.Clock
	logger *slog.Logger
}

// NewLog creates an audit log over the given workspace.
func NewLog(ws workspace.Workspace, clock workspace.Clock, logger *slog.Logger) *Log {
	if clock == nil {
		clock = workspace.SystemClock{}
	}
	return &Log{ws: ws, clock: clock, logger: logger}
}

// Record journals a new submission against the ledger row it produced,
// creating the kind's log table on first use. The stored payload is stamped
// with the row number so a later fetch recovers its context. Returns the
// generated log ID.
func (l *Log) Record(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error) {
	table := LogTable(kind)
	if err := l.ws.EnsureTable(ctx, table, logHeader); err != nil {
		return "", fmt.Errorf("ensuring log table: %w", err)
	}

	now := l.clock.Now()
	logID := newLogID(kind, now, rowNumber)
	values, err := encodeEntry(logID, rowNumber, now, payload)
	if err != nil {
		return "", err
	}

	if _, err := l.ws.AppendRow(ctx, table, values); err != nil {
		return "", fmt.Errorf("appending log entry: %w", err)
	}

	if l.logger != nil {
		l.logger.Info("submission journaled", "kind", kind, "row", rowNumber, "log_id", logID)
	}
	return logID, nil
}

// Update overwrites the entry journaled for rowNumber with a fresh log ID,
// timestamp, and payload. When no entry exists for the row it converges to
// Record.
func (l *Log) Update(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error) {
	table := LogTable(kind)
	rows, err := l.ws.ReadTable(ctx, table)
	if err != nil {
		if errors.Is(err, workspace.ErrTableNotFound) {
			return l.Record(ctx, kind, rowNumber, payload)
		}
		return "", fmt.Errorf("reading log table: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if entryRow(row) != rowNumber {
			continue
		}

		now := l.clock.Now()
		logID := newLogID(kind, now, rowNumber)
		values, err := encodeEntry(logID, rowNumber, now, payload)
		if err != nil {
			return "", err
		}
		if err := l.ws.WriteRow(ctx, table, i+1, values); err != nil {
			return "", fmt.Errorf("overwriting log entry: %w", err)
		}

		if l.logger != nil {
			l.logger.Info("journal entry replaced", "kind", kind, "row", rowNumber, "log_id", logID)
		}
		return logID, nil
	}

	return l.Record(ctx, kind, rowNumber, payload)
}

// Fetch returns the payload journaled under logID. ErrEntryNotFound when no
// entry matches; ErrCorruptEntry when the stored form data fails to decode.
func (l *Log) Fetch(ctx context.Context, kind item.Kind, logID string) (item.Submission, error) {
	table := LogTable(kind)
	rows, err := l.ws.ReadTable(ctx, table)
	if err != nil {
		if errors.Is(err, workspace.ErrTableNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, logID)
		}
		return nil, fmt.Errorf("reading log table: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cellText(row, colLogID) != logID {
			continue
		}

		var payload item.Submission
		if err := json.Unmarshal([]byte(cellText(row, colFormData)), &payload); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, logID, err)
		}
		return payload, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, logID)
}

func newLogID(kind item.Kind, now time.Time, rowNumber int) string {
	return fmt.Sprintf("%s_%d_%d", logPrefix(kind), now.UnixMilli(), rowNumber)
}

func encodeEntry(logID string, rowNumber int, now time.Time, payload item.Submission) ([]any, error) {
	stored := payload.Clone()
	stored[item.FieldOriginalRow] = rowNumber

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encoding form data: %w", err)
	}
	return []any{logID, rowNumber, now.Format(time.RFC3339), string(data)}, nil
}

func entryRow(row []any) int {
	if len(row) < colRow {
		return 0
	}
	switch n := row[colRow-1].(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func cellText(row []any, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	s, _ := row[col-1].(string)
	return s
}
