package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Workspace is a mock for workspace.Workspace.
type Workspace struct {
	mock.Mock
}

func (m *Workspace) ReadTable(ctx context.Context, table string) ([][]any, error) {
	args := m.Called(ctx, table)
	if rows, ok := args.Get(0).([][]any); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Workspace) WriteRow(ctx context.Context, table string, rowNumber int, values []any) error {
	args := m.Called(ctx, table, rowNumber, values)
	return args.Error(0)
}

func (m *Workspace) AppendRow(ctx context.Context, table string, values []any) (int, error) {
	args := m.Called(ctx, table, values)
	return args.Int(0), args.Error(1)
}

func (m *Workspace) EnsureTable(ctx context.Context, table string, header []any) error {
	args := m.Called(ctx, table, header)
	return args.Error(0)
}

func (m *Workspace) AnnotateCell(ctx context.Context, table string, row, col int, note string) error {
	args := m.Called(ctx, table, row, col, note)
	return args.Error(0)
}

func (m *Workspace) FormatCurrency(ctx context.Context, table string, row, col int) error {
	args := m.Called(ctx, table, row, col)
	return args.Error(0)
}

// Clock is a mock for workspace.Clock returning a fixed instant.
type Clock struct {
	Instant time.Time
}

func (c Clock) Now() time.Time { return c.Instant }
