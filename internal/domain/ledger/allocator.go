package ledger

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tallyworks/shopledger/internal/workspace"
)

var fabricationIDPattern = regexp.MustCompile(`^F(\d+)$`)

// Allocator derives the next sequential fabrication display ID by scanning
// existing IDs in the ledger. Gap-tolerant and collision-free under a
// single writer; never reuses an ID once assigned.
type Allocator struct {
	ws    workspace.Workspace
	table string
}

// NewAllocator creates an allocator over the given ledger table.
func NewAllocator(ws workspace.Workspace, table string) *Allocator {
	return &Allocator{ws: ws, table: table}
}

// NextFabricationID returns "F" plus the highest existing numeric suffix
// plus one, zero-padded to at least two digits. Cells that don't match the
// F<digits> shape are ignored.
func (a *Allocator) NextFabricationID(ctx context.Context) (string, error) {
	rows, err := a.ws.ReadTable(ctx, a.table)
	if err != nil && !errors.Is(err, workspace.ErrTableNotFound) {
		return "", fmt.Errorf("scanning display ids: %w", err)
	}

	max := 0
	for _, row := range rows {
		match := fabricationIDPattern.FindStringSubmatch(displayIDAt(row))
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return FormatDisplayID(max + 1), nil
}

// FormatDisplayID renders a fabrication sequence number as a display ID.
func FormatDisplayID(n int) string {
	return fmt.Sprintf("F%02d", n)
}
