// SPDX-License-Identifier: MPL-2.0

package kversion

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned when a header field line has no '=' and
	// therefore no value to extract.
	ErrMissingSeparator = errors.New("missing '=' separator")
	// ErrInvalidNumber is returned when a numeric header field does not hold
	// an unsigned decimal integer.
	ErrInvalidNumber = errors.New("invalid numeric value")
	// ErrRead is wrapped around failures to open or read a Makefile.
	ErrRead = errors.New("read kernel metadata")
	// ErrInvalidRelease is returned when a kernel release string cannot be
	// parsed by ParseRelease.
	ErrInvalidRelease = errors.New("invalid kernel release")
)

// ParseError describes a header field that could not be parsed.
// It wraps ErrMissingSeparator or ErrInvalidNumber for errors.Is() compatibility.
// Only whole field names produce one: a line such as "NAMED x" is not a field
// line (see Parse) and is never reported.
type ParseError struct {
	// Field is the header field name (e.g. "SUBLEVEL").
	Field Field
	// Line is the 1-based line number in the Makefile.
	Line int
	// Text is the offending line, verbatim.
	Text string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: field %s: %v (%q)", e.Line, e.Field, e.Err, e.Text)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ParseError) Unwrap() error { return e.Err }
