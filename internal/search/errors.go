package search

import "fmt"

// AuthorizationError is returned when the caller's credential is missing
// or rejected. No query is executed.
type AuthorizationError struct {
	Reason string
	cause  error
}

func (e *AuthorizationError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

func (e *AuthorizationError) Unwrap() error { return e.cause }

// RowDecodeError indicates a stored row that violates the catalog schema.
type RowDecodeError struct {
	Column string
	AppID  any
	cause  error
}

func (e *RowDecodeError) Error() string {
	return fmt.Sprintf("decode row (AppID %v): column %s: %v", e.AppID, e.Column, e.cause)
}

func (e *RowDecodeError) Unwrap() error { return e.cause }
