package submission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tallyworks/shopledger/internal/domain/item"
	"github.com/tallyworks/shopledger/internal/domain/ledger"
	"github.com/tallyworks/shopledger/internal/domain/submission"
)

type ledgerMock struct {
	mock.Mock
}

func (m *ledgerMock) Append(ctx context.Context, kind item.Kind, it ledger.Item) (int, error) {
	args := m.Called(ctx, kind, it)
	return args.Int(0), args.Error(1)
}

func (m *ledgerMock) UpdateAt(ctx context.Context, rowNumber int, kind item.Kind, it ledger.Item) (int, error) {
	args := m.Called(ctx, rowNumber, kind, it)
	return args.Int(0), args.Error(1)
}

func (m *ledgerMock) AnnotateLog(ctx context.Context, kind item.Kind, rowNumber int, logID string) error {
	args := m.Called(ctx, kind, rowNumber, logID)
	return args.Error(0)
}

type auditMock struct {
	mock.Mock
}

func (m *auditMock) Record(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error) {
	args := m.Called(ctx, kind, rowNumber, payload)
	return args.String(0), args.Error(1)
}

func (m *auditMock) Update(ctx context.Context, kind item.Kind, rowNumber int, payload item.Submission) (string, error) {
	args := m.Called(ctx, kind, rowNumber, payload)
	return args.String(0), args.Error(1)
}

func (m *auditMock) Fetch(ctx context.Context, kind item.Kind, logID string) (item.Submission, error) {
	args := m.Called(ctx, kind, logID)
	if payload, ok := args.Get(0).(item.Submission); ok {
		return payload, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCoordinator_SubmitCreate(t *testing.T) {
	ctx := context.Background()
	ledgerStore := &ledgerMock{}
	auditLog := &auditMock{}

	sub := item.Submission{
		"description": "Steel frame",
		"dimensions":  "4x8",
		"totalPrice":  "$1,540.16",
	}
	ledgerStore.On("Append", ctx, item.KindFabrication, mock.Anything).Return(3, nil)
	auditLog.On("Record", ctx, item.KindFabrication, 3, sub).Return("FAB_1_3", nil)
	ledgerStore.On("AnnotateLog", ctx, item.KindFabrication, 3, "FAB_1_3").Return(nil)

	coord := submission.NewCoordinator(ledgerStore, auditLog, nil)
	result := coord.Submit(ctx, item.KindFabrication, sub)

	require.True(t, result.Success)
	require.False(t, result.IsUpdate)
	require.Equal(t, 3, result.RowNumber)
	require.Equal(t, "FAB_1_3", result.LogID)
	ledgerStore.AssertExpectations(t)
	auditLog.AssertExpectations(t)
}

func TestCoordinator_SubmitEditViaNestedRowPointer(t *testing.T) {
	ctx := context.Background()
	ledgerStore := &ledgerMock{}
	auditLog := &auditMock{}

	sub := item.Submission{
		"description": "Crew shirts",
		"quantity":    12.0,
		"totalPrice":  240.0,
		"formData":    map[string]any{"originalRowNumber": 5.0},
	}
	ledgerStore.On("UpdateAt", ctx, 5, item.KindGeneric, mock.Anything).Return(5, nil)
	auditLog.On("Update", ctx, item.KindGeneric, 5, sub).Return("APP_2_5", nil)
	ledgerStore.On("AnnotateLog", ctx, item.KindGeneric, 5, "APP_2_5").Return(nil)

	coord := submission.NewCoordinator(ledgerStore, auditLog, nil)
	result := coord.Submit(ctx, item.KindGeneric, sub)

	require.True(t, result.Success)
	require.True(t, result.IsUpdate)
	require.Equal(t, 5, result.RowNumber)
	require.Equal(t, "APP_2_5", result.LogID)
	ledgerStore.AssertExpectations(t)
}

func TestCoordinator_LedgerFailureIsStructured(t *testing.T) {
	ctx := context.Background()
	ledgerStore := &ledgerMock{}
	auditLog := &auditMock{}

	sub := item.Submission{
		"description":       "Anything",
		"originalRowNumber": 40,
	}
	ledgerStore.On("UpdateAt", ctx, 40, item.KindFabrication, mock.Anything).
		Return(0, ledger.ErrInvalidRow)

	coord := submission.NewCoordinator(ledgerStore, auditLog, nil)
	result := coord.Submit(ctx, item.KindFabrication, sub)

	require.False(t, result.Success)
	require.Zero(t, result.RowNumber)
	require.Empty(t, result.LogID)
	require.NotEmpty(t, result.Message)
	auditLog.AssertNotCalled(t, "Update")
	auditLog.AssertNotCalled(t, "Record")
}

func TestCoordinator_InvalidInputIsStructured(t *testing.T) {
	ctx := context.Background()
	coord := submission.NewCoordinator(&ledgerMock{}, &auditMock{}, nil)

	result := coord.Submit(ctx, item.KindGeneric, item.Submission{"totalPrice": 5.0})
	require.False(t, result.Success)
	require.Contains(t, result.Message, "description")

	result = coord.Submit(ctx, item.KindGeneric, item.Submission{
		"description": "x",
		"totalPrice":  "soon",
	})
	require.False(t, result.Success)
}

func TestCoordinator_AuditFailureIsSoft(t *testing.T) {
	ctx := context.Background()
	ledgerStore := &ledgerMock{}
	auditLog := &auditMock{}

	sub := item.Submission{"description": "Steel frame"}
	ledgerStore.On("Append", ctx, item.KindFabrication, mock.Anything).Return(2, nil)
	auditLog.On("Record", ctx, item.KindFabrication, 2, sub).
		Return("", errors.New("io failure"))

	coord := submission.NewCoordinator(ledgerStore, auditLog, nil)
	result := coord.Submit(ctx, item.KindFabrication, sub)

	require.True(t, result.Success, "ledger write is kept")
	require.Equal(t, 2, result.RowNumber)
	require.Empty(t, result.LogID)
	ledgerStore.AssertNotCalled(t, "AnnotateLog")
}

func TestCoordinator_ZeroRowPointerMeansCreate(t *testing.T) {
	ctx := context.Background()
	ledgerStore := &ledgerMock{}
	auditLog := &auditMock{}

	sub := item.Submission{
		"description":       "Fresh row",
		"originalRowNumber": 0,
	}
	ledgerStore.On("Append", ctx, item.KindGeneric, mock.Anything).Return(1, nil)
	auditLog.On("Record", ctx, item.KindGeneric, 1, sub).Return("APP_1_1", nil)
	ledgerStore.On("AnnotateLog", ctx, item.KindGeneric, 1, "APP_1_1").Return(nil)

	coord := submission.NewCoordinator(ledgerStore, auditLog, nil)
	result := coord.Submit(ctx, item.KindGeneric, sub)

	require.True(t, result.Success)
	require.False(t, result.IsUpdate)
	ledgerStore.AssertNotCalled(t, "UpdateAt")
}

func TestCoordinator_FetchForEdit(t *testing.T) {
	ctx := context.Background()
	auditLog := &auditMock{}
	payload := item.Submission{"description": "Steel frame", "originalRowNumber": 3.0}
	auditLog.On("Fetch", ctx, item.KindFabrication, "FAB_1_3").Return(payload, nil)

	coord := submission.NewCoordinator(&ledgerMock{}, auditLog, nil)
	got, err := coord.FetchForEdit(ctx, item.KindFabrication, "FAB_1_3")
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
