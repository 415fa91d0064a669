package item

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the item-type tag determining ledger row schema and which log
// table a submission lands in. It travels alongside log IDs from creation
// through retrieval; nothing ever parses a kind back out of an ID string.
type Kind string

const (
	KindFabrication Kind = "FABRICATION"
	KindGeneric     Kind = "GENERIC"
)

// ParseKind normalizes a caller-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindFabrication:
		return KindFabrication, nil
	case KindGeneric:
		return KindGeneric, nil
	default:
		return "", fmt.Errorf("unknown item kind %q", s)
	}
}

// Form field names shared between the coordinator and the audit log.
const (
	FieldOriginalRow = "originalRowNumber"
	FieldFormData    = "formData"
)

// Submission is the raw form payload: field name to value, as produced by
// the dialog layer. Values are whatever JSON decoding yields.
type Submission map[string]any

// Clone returns a shallow copy so stored payloads can be stamped without
// mutating the caller's map.
func (s Submission) Clone() Submission {
	out := make(Submission, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// OriginalRow resolves the row pointer of a resubmitted edit: the top-level
// field first, then the nested form-data payload. Returns false when the
// submission carries no usable pointer.
func (s Submission) OriginalRow() (int, bool) {
	if n, ok := rowNumber(s[FieldOriginalRow]); ok {
		return n, true
	}
	if nested, ok := s[FieldFormData].(map[string]any); ok {
		if n, ok := rowNumber(nested[FieldOriginalRow]); ok {
			return n, true
		}
	}
	return 0, false
}

func rowNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
