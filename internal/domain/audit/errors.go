package audit

import "errors"

var (
	// ErrEntryNotFound indicates no log entry matches the given log ID.
	ErrEntryNotFound = errors.New("log entry not found")
	// ErrCorruptEntry indicates a log entry whose stored payload fails to
	// deserialize. Distinct from not-found on purpose.
	ErrCorruptEntry = errors.New("log entry payload is corrupt")
)
