package audit

import (
	"time"

	"github.com/tallyworks/shopledger/internal/domain/item"
)

// Entry is one journal record linking a generated log ID to the raw form
// payload and the ledger row it produced.
type Entry struct {
	LogID     string          `json:"logId"`
	RowNumber int             `json:"rowNumber"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   item.Submission `json:"payload"`
}

// One log table per item kind, 4 fixed columns.
var logHeader = []any{"LogID", "ProjectRow", "Timestamp", "FormData"}

const (
	colLogID     = 1
	colRow       = 2
	colTimestamp = 3
	colFormData  = 4
)

// LogTable returns the journal table name for a kind.
func LogTable(kind item.Kind) string {
	if kind == item.KindFabrication {
		return "FabricationLog"
	}
	return "ApparelLog"
}

func logPrefix(kind item.Kind) string {
	if kind == item.KindFabrication {
		return "FAB"
	}
	return "APP"
}
