package submission

import (
	"context"

	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/domain/ledger"
)

// LedgerStore provides the ledger row operations the coordinator delegates to.
type LedgerStore interface {
	Append(ctx context.Context, kind item.Kind, it ledger.Item) (int, error)
	UpdateAt(ctx context.Context, rowNumber int, kind item.Kind, it ledger.Item) (int, error)
	AnnotateLog(ctx context.Context, kind item.Kind, rowNumber int, logID string) error
}

// AuditLog provides the submission journal operations.
type AuditLog interface {
	Record(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error)
	Update(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error)
	Fetch(ctx context.Context, kind item.Kind, logID string) (item.Submission, error)
}
