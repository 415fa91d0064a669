package workspace

import "errors"

var (
	// ErrTableNotFound is returned when a requested table doesn't exist.
	ErrTableNotFound = errors.New("table not found")

	// ErrInvalidRow is returned for non-positive row numbers.
	ErrInvalidRow = errors.New("invalid row number")
)
