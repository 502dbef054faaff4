package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Kinds
// =============================================================================

var (
	// ErrInvalidInputType is returned when an argument is missing, non-numeric or NaN.
	ErrInvalidInputType = errors.New("invalid input type")

	// ErrInvalidEthiopianDate is returned when an Ethiopian month or day is out of range.
	ErrInvalidEthiopianDate = errors.New("invalid ethiopian date")

	// ErrInvalidGregorianDate is returned for malformed Gregorian dates and
	// dates outside the supported 1900-2100 window.
	ErrInvalidGregorianDate = errors.New("invalid gregorian date")

	// ErrInvalidDateFormat is returned when a textual date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// InputTypeError describes an argument of the wrong type.
type InputTypeError struct {
	Func     string // operation that rejected the input
	Param    string // parameter name, e.g. "date.month"
	Expected string // expected type, e.g. "number"
	Received any    // offending value
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("invalid type for parameter %q in %s: expected %s but got %s",
		e.Param, e.Func, e.Expected, typeName(e.Received))
}

func (e *InputTypeError) Unwrap() error { return ErrInvalidInputType }

// DateError carries the offending date triple of an invalid Ethiopian or
// Gregorian date. Kind is one of ErrInvalidEthiopianDate or ErrInvalidGregorianDate.
type DateError struct {
	Kind  error
	Year  int
	Month int
	Day   int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %d/%d/%d", e.Kind, e.Year, e.Month, e.Day)
}

func (e *DateError) Unwrap() error { return e.Kind }

// DateFormatError is returned by the date parsers.
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("%s: %q, expected yyyy/mm/dd or yyyy-mm-dd", ErrInvalidDateFormat, e.Input)
}

func (e *DateFormatError) Unwrap() error { return ErrInvalidDateFormat }

func invalidEthiopian(y, m, d int) error {
	return &DateError{Kind: ErrInvalidEthiopianDate, Year: y, Month: m, Day: d}
}

func invalidGregorian(y, m, d int) error {
	return &DateError{Kind: ErrInvalidGregorianDate, Year: y, Month: m, Day: d}
}

func typeName(v any) string {
	if v == nil {
		return "nothing"
	}
	return fmt.Sprintf("%T", v)
}
