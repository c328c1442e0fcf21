package calendar

import (
	"errors"
	"fmt"
	"time"
)

// InvalidRangeError indicates that a range ends before it starts.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	if e == nil {
		return "invalid date range"
	}
	return fmt.Sprintf("invalid date range: end %s is before start %s",
		e.End.Format(time.DateOnly), e.Start.Format(time.DateOnly))
}

func IsInvalidRange(err error) bool {
	var e *InvalidRangeError
	return errors.As(err, &e)
}

// InvalidPatternError is returned for week label patterns that cannot be resolved.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid week label pattern %q (want all, odd, none or 7 comma separated labels)", e.Pattern)
}
