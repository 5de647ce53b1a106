package dataloader

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCity         = errors.New("unknown city")
	ErrMissingColumn       = errors.New("missing required column")
	ErrInvalidTripData     = errors.New("invalid trip data")
	ErrInvalidRow          = errors.New("invalid row")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDurationType = errors.New("invalid duration type")
	ErrNegativeDuration    = errors.New("negative duration")
	ErrInvalidTripWindow   = errors.New("end time before start time")
	ErrInvalidBirthYear    = errors.New("invalid birth year")
	ErrInvalidStationData  = errors.New("invalid station data")
)

// ParseError a value of the source file that could not be turned into a trip.
// Any ParseError aborts the whole load.
// + Source: file being read
// + Line: line of the file, the header is line 1
// + Column: name of the column, empty if the whole row is wrong
// + Value: raw value found in the file
// + Err: reason, wraps one of the sentinel errors of this package
type ParseError struct {
	Source string
	Line   int
	Column string
	Value  string
	Err    error
}

func newParseError(source string, line int, column string, value string, reason error, kind error) *ParseError {
	return &ParseError{
		Source: source,
		Line:   line,
		Column: column,
		Value:  value,
		Err:    fmt.Errorf("%w: %w", reason, kind),
	}
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%v: %s", e.Source, e.Line, e.Err.Error())
	}
	return fmt.Sprintf("%s:%v: column %q value %q: %s", e.Source, e.Line, e.Column, e.Value, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
