package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ListDelimiter joins the elements of string-list fields in storage.
// Elements must be non-empty and must not contain it, so that
// DecodeList(EncodeList(l)) == l for every accepted l.
const ListDelimiter = ","

var (
	// ErrDelimiterInElement is returned when a list element contains ListDelimiter.
	ErrDelimiterInElement = errors.New("list element contains the list delimiter")
	// ErrEmptyElement is returned for an empty list element.
	ErrEmptyElement = errors.New("list element is empty")
	// ErrLiteralList is returned for list values written as a bracketed
	// literal (e.g. "['English', 'French']"). Only delimiter-joined values
	// are supported.
	ErrLiteralList = errors.New("bracketed list literals are not supported")
)

// EncodeList joins elems into the storage representation.
func EncodeList(elems []string) (string, error) {
	for i, e := range elems {
		if e == "" {
			return "", fmt.Errorf("%w: element %d", ErrEmptyElement, i)
		}
		if strings.Contains(e, ListDelimiter) {
			return "", fmt.Errorf("%w: %q", ErrDelimiterInElement, e)
		}
	}
	return strings.Join(elems, ListDelimiter), nil
}

// DecodeList splits a stored value. The empty string decodes to an empty,
// non-nil slice.
func DecodeList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ListDelimiter)
}

// CleanList trims each element and drops the ones left empty.
func CleanList(elems []string) []string {
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// IsLiteralList reports whether s looks like a bracketed list literal.
func IsLiteralList(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}
