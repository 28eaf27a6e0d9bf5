package assert

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}

// Resolver is anything that resolves itself against an axis length.
type Resolver interface {
	GetStart(dim int64) int64
	GetStop(dim int64) int64
	GetLength(dim int64) int64
}

// Resolves is a test helper to verify the start, stop and length r resolves to on an axis of length dim
func Resolves(t *testing.T, r Resolver, dim int64, start, stop, length int64) bool {
	t.Helper()
	ok := assert2.Equal(t, start, r.GetStart(dim), "start on dim %d", dim)
	ok = assert2.Equal(t, stop, r.GetStop(dim), "stop on dim %d", dim) && ok
	return assert2.Equal(t, length, r.GetLength(dim), "length on dim %d", dim) && ok
}
