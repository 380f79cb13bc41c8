package csvdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when no header line can be derived from the input.
	ErrInvalidInput = errors.New("csvdoc: invalid input")
	// ErrInvalidDelimiter is returned when a delimiter cannot separate fields.
	ErrInvalidDelimiter = errors.New("csvdoc: invalid delimiter")
	// ErrBareQuote is returned in strict mode when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("csvdoc: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned in strict mode when a quoted field is not closed before the end of its line.
	ErrUnterminatedQuote = errors.New("csvdoc: unterminated quoted field")
	// ErrDecode wraps failures while binding rows to Go values.
	ErrDecode = errors.New("csvdoc: decode failed")
)

// ParseError contains location information for CSV parsing errors.
// Line is 1-based and counts the dialect-hint line when present.
// Column is the 1-based rune offset within the line, or 0 when unknown.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column == 0 {
		return fmt.Sprintf("csvdoc: parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csvdoc: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
