package parse

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is wrapped by a ParseError when the buffer is empty.
var ErrEmptyFontData = errors.New("parse: empty font data")

// ParseError reports that a buffer is not a well-formed font.
// Every failure of Extract, including a panic inside a parser backend, is
// reported as a *ParseError.
type ParseError struct {
	// Parser is the backend that rejected the data.
	Parser string

	// Err is the backend's error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %s: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
