package entity

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrIO          = errors.New("io error")
	ErrValidation  = errors.New("validation error")
	ErrEmptyReport = errors.New("empty report")
)

// ParseError reports a missing field or a value that could not be parsed.
// Row is the 1-based data row number, zero when the header itself is at fault.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Row > 0 {
		msg = fmt.Sprintf("%s: row %d", msg, e.Row)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: value %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IOError wraps a failure to open, read or write a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ValidationError rejects structurally degenerate input.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
