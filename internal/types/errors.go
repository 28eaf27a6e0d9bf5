package types

import (
	"fmt"
)

var (
	// ErrDimension is the errors.Is target for any DimensionError.
	ErrDimension = &DimensionError{}
	// ErrParse is the errors.Is target for any ParseError.
	ErrParse = &ParseError{}
)

// DimensionError reports a slice that can never be resolved against an
// axis, such as one with a zero step.
type DimensionError struct {
	Msg string
}

func (e *DimensionError) Error() string {
	return e.Msg
}

func (e *DimensionError) Is(target error) bool {
	_, ok := target.(*DimensionError)
	return ok
}

func ErrDim(f string, args ...any) error {
	return &DimensionError{Msg: fmt.Sprintf(f, args...)}
}

// ParseError reports a slice expression that is not of the
// form `stop`, `start:stop` or `start:stop:step`.
type ParseError struct {
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid slice expression %q", e.Expr)
	}
	return fmt.Sprintf("invalid slice expression %q: %s", e.Expr, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

func ErrParsef(expr string, f string, args ...any) error {
	return &ParseError{Expr: expr, Err: fmt.Errorf(f, args...)}
}
