package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatedb/slice-go/internal/types"
)

func TestTensorIntRange(t *testing.T) {
	saved := maxTensorIndex
	maxTensorIndex = 1<<31 - 1
	t.Cleanup(func() { maxTensorIndex = saved })

	_, err := Between(0, 1<<31).Tensor(1 << 32)
	assert.ErrorIs(t, err, types.ErrDimension)
	assert.Contains(t, err.Error(), "exceeds the int range")

	_, err = Between(1<<31, 1<<31+5).Tensor(1 << 32)
	assert.ErrorIs(t, err, types.ErrDimension)

	ts, err := Between(0, 1<<31-1).Tensor(1 << 32)
	require.NoError(t, err)
	assert.Equal(t, 0, ts.Start())
	assert.Equal(t, 1<<31-1, ts.End())
}
