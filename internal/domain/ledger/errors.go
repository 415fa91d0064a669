package ledger

import "errors"

var (
	// ErrInvalidRow indicates a row number outside the ledger's bounds.
	ErrInvalidRow = errors.New("row number out of ledger bounds")
	// ErrInvalidInput indicates malformed item data.
	ErrInvalidInput = errors.New("invalid ledger item")
	// ErrUnknownKind indicates an unrecognized item kind.
	ErrUnknownKind = errors.New("unknown item kind")
)
