package assert_test

import (
	"testing"

	"github.com/slatedb/slice-go/internal/assert"
	assert2 "github.com/stretchr/testify/assert"
)

type fixed struct {
	start, stop, length int64
}

func (f fixed) GetStart(int64) int64  { return f.start }
func (f fixed) GetStop(int64) int64   { return f.stop }
func (f fixed) GetLength(int64) int64 { return f.length }

func TestTrue(t *testing.T) {
	assert2.NotPanics(t, func() { assert.True(true, "never") })
	assert2.PanicsWithValue(t, "Assertion Failed: bad length -1\n", func() {
		assert.True(false, "bad length %d", -1)
	})
}

func TestResolves(t *testing.T) {
	assert2.True(t, assert.Resolves(t, fixed{1, 4, 3}, 10, 1, 4, 3))
	assert2.True(t, assert.Resolves(t, fixed{9, -1, 10}, 10, 9, -1, 10))
}
