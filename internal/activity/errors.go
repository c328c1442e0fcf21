package activity

import (
	"errors"
	"fmt"
)

// ParseError indicates malformed observation input.
// Record is 1-based; 0 means the input as a whole could not be parsed.
type ParseError struct {
	Format Format
	Record int
	cause  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "invalid input"
	}
	if e.Record > 0 {
		return fmt.Sprintf("invalid %s input at record %d: %v", e.Format, e.Record, e.cause)
	}
	return fmt.Sprintf("invalid %s input: %v", e.Format, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
