package mcp

import (
	"errors"
	"fmt"

	"github.com/tallyworks/shopledger/internal/domain/audit"
	"github.com/tallyworks/shopledger/internal/domain/ledger"
	"github.com/tallyworks/shopledger/internal/domain/reference"
)

// APIError represents an MCP error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, audit.ErrEntryNotFound):
		return &APIError{Code: "LOG_ENTRY_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, audit.ErrCorruptEntry):
		return &APIError{Code: "LOG_ENTRY_CORRUPT", Message: err.Error()}
	case errors.Is(err, reference.ErrUnknownDataset):
		return &APIError{Code: "UNKNOWN_DATASET", Message: err.Error()}
	case errors.Is(err, ledger.ErrInvalidRow):
		return &APIError{Code: "INVALID_ROW", Message: err.Error()}
	case errors.Is(err, ledger.ErrInvalidInput), errors.Is(err, ledger.ErrUnknownKind):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
}
