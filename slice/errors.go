package slice

import "github.com/slatedb/slice-go/internal/types"

type (
	DimensionError = types.DimensionError
	ParseError     = types.ParseError
)

var (
	// ErrDimension matches, via errors.Is, any error caused by a zero step.
	ErrDimension = types.ErrDimension
	// ErrParse matches, via errors.Is, any malformed slice expression.
	ErrParse = types.ErrParse
)
