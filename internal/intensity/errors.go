package intensity

import (
	"errors"
	"fmt"
)

// InvalidBucketCountError is returned when fewer than two buckets are requested.
type InvalidBucketCountError struct {
	Count int
}

func (e *InvalidBucketCountError) Error() string {
	return fmt.Sprintf("intensity variance must be >= %d, got %d", MinBuckets, e.Count)
}

// InvalidCountError is returned for negative observation counts.
type InvalidCountError struct {
	Count int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("count must be >= 0, got %d", e.Count)
}

// InvalidColorError wraps a color that could not be parsed as hex.
type InvalidColorError struct {
	Color string
	cause error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q (expected #rgb or #rrggbb)", e.Color)
}

func (e *InvalidColorError) Unwrap() error { return e.cause }

// PaletteSizeError is returned when a caller supplied palette does not match
// the bucket count.
type PaletteSizeError struct {
	Want int
	Got  int
}

func (e *PaletteSizeError) Error() string {
	return fmt.Sprintf("palette must have %d colors, got %d", e.Want, e.Got)
}

func IsInvalidBucketCount(err error) bool {
	var e *InvalidBucketCountError
	return errors.As(err, &e)
}

func IsInvalidCount(err error) bool {
	var e *InvalidCountError
	return errors.As(err, &e)
}

func IsInvalidColor(err error) bool {
	var e *InvalidColorError
	return errors.As(err, &e)
}
