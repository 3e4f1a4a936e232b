package ethcal

import (
	"errors"
	"fmt"
)

var (
	ErrFormat     = errors.New("invalid Ethiopian date format")                 // Matched by every *FormatError
	ErrValidation = errors.New("Ethiopian date out of range")                   // Matched by every *ValidationError
	ErrRange      = errors.New("date outside the supported Ethiopian calendar") // Matched by every *RangeError
)

// FormatError is returned when text does not have the YYYY-MM-DD shape
// or one of its parts is not an integer.
type FormatError struct {
	Input string // The raw input as it was passed in
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid Ethiopian date format: %q (expected YYYY-MM-DD)", e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Field names used in ValidationError
const (
	FieldYear  = "year"
	FieldMonth = "month"
	FieldDay   = "day"
)

// ValidationError is returned for a well formed date with a field outside its bounds.
// Min and Max are the inclusive bounds the value violated, Max is 0 when there is no upper bound.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
	Year  int // Only set for day errors in month 13, where the bound depends on the year
	Month int // Only set for day errors
}

func (e *ValidationError) Error() string {
	switch {
	case e.Max == 0:
		return fmt.Sprintf("invalid Ethiopian %s: %d (must be >= %d)", e.Field, e.Value, e.Min)
	case e.Field == FieldDay && e.Month == 13:
		return fmt.Sprintf("invalid Ethiopian day: %d (month 13 has %d days in year %d)", e.Value, e.Max, e.Year)
	case e.Field == FieldDay:
		return fmt.Sprintf("invalid Ethiopian day: %d (month %d has %d days)", e.Value, e.Month, e.Max)
	default:
		return fmt.Sprintf("invalid Ethiopian %s: %d (must be %d-%d)", e.Field, e.Value, e.Min, e.Max)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RangeError is returned when a Julian day number lies before the first day of the
// Ethiopian calendar or after the last day of MaxYear.
type RangeError struct {
	JDN int
}

func (e *RangeError) Error() string {
	if e.JDN >= Epoch {
		return fmt.Sprintf("Julian day %d is after the last supported Ethiopian date %04d-13-06 (Julian day %d)", e.JDN, MaxYear, maxJDN)
	}
	return fmt.Sprintf("Julian day %d precedes the Ethiopian epoch (Julian day %d)", e.JDN, Epoch)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
