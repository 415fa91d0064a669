package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tallyworks/shopledger/internal/workspace"
)

func TestWorkspace_ReadTableNotFound(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	_, err := ws.ReadTable(ctx, "Missing")
	require.ErrorIs(t, err, workspace.ErrTableNotFound)
}

func TestWorkspace_WriteReadRoundTrip(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	err := ws.WriteRow(ctx, "Project", 1, []any{"Widget", 2.0, "", 19.99, "edit"})
	require.NoError(t, err)

	rows, err := ws.ReadTable(ctx, "Project")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0][0])
	require.Equal(t, 2.0, rows[0][1])
	require.Equal(t, 19.99, rows[0][3])
}

func TestWorkspace_AppendRowSequence(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	first, err := ws.AppendRow(ctx, "Log", []any{"a"})
	require.NoError(t, err)
	require.Equal(t, 1, first)

	second, err := ws.AppendRow(ctx, "Log", []any{"b"})
	require.NoError(t, err)
	require.Equal(t, 2, second)

	rows, err := ws.ReadTable(ctx, "Log")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "b", rows[1][0])
}

func TestWorkspace_WriteRowGapsPadded(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	require.NoError(t, ws.WriteRow(ctx, "Project", 3, []any{"late"}))

	rows, err := ws.ReadTable(ctx, "Project")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Empty(t, rows[0])
	require.Empty(t, rows[1])
	require.Equal(t, "late", rows[2][0])
}

func TestWorkspace_WriteRowInvalid(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	err := ws.WriteRow(ctx, "Project", 0, []any{"x"})
	require.ErrorIs(t, err, workspace.ErrInvalidRow)
}

func TestWorkspace_EnsureTable(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()
	header := []any{"LogID", "ProjectRow", "Timestamp", "FormData"}

	require.NoError(t, ws.EnsureTable(ctx, "FabricationLog", header))

	rows, err := ws.ReadTable(ctx, "FabricationLog")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "LogID", rows[0][0])

	// Second call must not reset existing contents.
	_, err = ws.AppendRow(ctx, "FabricationLog", []any{"FAB_1_2", 2.0, "ts", "{}"})
	require.NoError(t, err)
	require.NoError(t, ws.EnsureTable(ctx, "FabricationLog", header))

	rows, err = ws.ReadTable(ctx, "FabricationLog")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestWorkspace_AnnotateCellReplaces(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	require.NoError(t, ws.AnnotateCell(ctx, "Project", 2, 7, "log FAB_1_2"))
	require.NoError(t, ws.AnnotateCell(ctx, "Project", 2, 7, "log FAB_9_2"))

	note, err := ws.CellNote(ctx, "Project", 2, 7)
	require.NoError(t, err)
	require.Equal(t, "log FAB_9_2", note)
}

func TestWorkspace_FormatCurrency(t *testing.T) {
	ws := NewTestWorkspace(t)
	ctx := context.Background()

	require.NoError(t, ws.FormatCurrency(ctx, "Project", 1, 6))

	format, err := ws.CellFormat(ctx, "Project", 1, 6)
	require.NoError(t, err)
	require.Equal(t, "$#,##0.00", format)
}
