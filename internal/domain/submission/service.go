package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/domain/ledger"
)

// Coordinator orchestrates "add or update": it decides from the payload
// whether a submission is new or an edit of an existing row, delegates to
// the ledger store and audit log, and converts every failure into a
// structured Result.
type Coordinator struct {
	ledger LedgerStore
	audit  AuditLog
	logger *slog.Logger
}

// NewCoordinator creates a submission coordinator.
func NewCoordinator(ledgerStore LedgerStore, auditLog AuditLog, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		ledger: ledgerStore,
		audit:  auditLog,
		logger: logger,
	}
}

// Submit persists one form submission. The ledger write decides success;
// journaling is best-effort: if it fails the ledger row is kept and the
// result carries an empty log ID.
func (c *Coordinator) Submit(ctx context.Context, kind item.Kind, sub item.Submission) Result {
	traceID := uuid.NewString()

	it, err := itemFromSubmission(sub)
	if err != nil {
		return c.failure(traceID, err)
	}

	originalRow, isUpdate := sub.OriginalRow()
	isUpdate = isUpdate && originalRow > 0

	var rowNumber int
	if isUpdate {
		rowNumber, err = c.ledger.UpdateAt(ctx, originalRow, kind, it)
	} else {
		rowNumber, err = c.ledger.Append(ctx, kind, it)
	}
	if err != nil {
		return c.failure(traceID, err)
	}

	var logID string
	if isUpdate {
		logID, err = c.audit.Update(ctx, kind, rowNumber, sub)
	} else {
		logID, err = c.audit.Record(ctx, kind, rowNumber, sub)
	}
	if err != nil {
		// Soft failure: the ledger write already succeeded and is kept.
		logID = ""
		if c.logger != nil {
			c.logger.Warn("journaling failed, ledger row kept",
				"trace_id", traceID, "kind", kind, "row", rowNumber, "error", err)
		}
	}

	if logID != "" {
		if err := c.ledger.AnnotateLog(ctx, kind, rowNumber, logID); err != nil && c.logger != nil {
			c.logger.Warn("edit marker annotation failed",
				"trace_id", traceID, "row", rowNumber, "error", err)
		}
	}

	message := "item added"
	if isUpdate {
		message = "item updated"
	}
	if c.logger != nil {
		c.logger.Info("submission completed",
			"trace_id", traceID, "kind", kind, "row", rowNumber, "log_id", logID, "update", isUpdate)
	}
	return Result{
		Success:   true,
		RowNumber: rowNumber,
		LogID:     logID,
		IsUpdate:  isUpdate,
		Message:   message,
	}
}

// FetchForEdit returns the journaled payload for a prior submission so the
// dialog layer can repopulate its form.
func (c *Coordinator) FetchForEdit(ctx context.Context, kind item.Kind, logID string) (item.Submission, error) {
	return c.audit.Fetch(ctx, kind, logID)
}

func (c *Coordinator) failure(traceID string, err error) Result {
	if c.logger != nil {
		c.logger.Error("submission failed", "trace_id", traceID, "error", err)
	}
	return Result{Success: false, Message: err.Error()}
}

func itemFromSubmission(sub item.Submission) (ledger.Item, error) {
	description, _ := sub["description"].(string)
	description = strings.TrimSpace(description)
	if description == "" {
		return ledger.Item{}, fmt.Errorf("%w: description is required", ledger.ErrInvalidInput)
	}

	dimensions, _ := sub["dimensions"].(string)

	quantity, err := asNumber(sub["quantity"])
	if err != nil {
		return ledger.Item{}, fmt.Errorf("%w: quantity: %v", ledger.ErrInvalidInput, err)
	}

	price, err := asPrice(sub["totalPrice"])
	if err != nil {
		return ledger.Item{}, fmt.Errorf("%w: totalPrice: %v", ledger.ErrInvalidInput, err)
	}

	return ledger.Item{
		Description: description,
		Dimensions:  dimensions,
		Quantity:    quantity,
		TotalPrice:  price,
	}, nil
}

func asNumber(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		f, _ := d.Float64()
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func asPrice(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(n)
		if cleaned == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a price: %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("not a price: %v", v)
	}
}
