package dto

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError reports input that could not be read as a number.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func NewParseError(field, input string, err error) *ParseError {
	return &ParseError{Field: field, Input: input, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s %q is not a valid number", ErrParse, e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
