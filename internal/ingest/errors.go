package ingest

import (
	"fmt"
	"strings"
)

// SchemaValidationError rejects a dataset whose header does not cover the
// catalog schema. No rows are ingested.
type SchemaValidationError struct {
	Missing   []string
	Duplicate []string
}

func (e *SchemaValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns in CSV: %v", e.Missing))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate columns in CSV: %v", e.Duplicate))
	}
	return strings.Join(parts, "; ")
}

// CellError reports a value that does not satisfy its column's type.
//
// The underlying parse error can be accessed via errors.Unwrap.
type CellError struct {
	Row    int // 1-based data row
	Column string
	Value  any
	cause  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.cause)
}

func (e *CellError) Unwrap() error { return e.cause }

// DuplicateKeyError reports an AppID that occurs more than once.
type DuplicateKeyError struct {
	AppID int64
	Rows  [2]int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("AppID %d appears in rows %d and %d", e.AppID, e.Rows[0], e.Rows[1])
}
