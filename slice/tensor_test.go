package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/slatedb/slice-go/slice"
)

func TestTensor(t *testing.T) {
	ts, err := slice.Between(-3, -1).Tensor(10)
	require.NoError(t, err)
	assert.Equal(t, 7, ts.Start())
	assert.Equal(t, 9, ts.End())
	assert.Equal(t, 1, ts.Step())

	ts, err = slice.MustNew(some(1), none, some(3)).Tensor(10)
	require.NoError(t, err)
	assert.Equal(t, 1, ts.Start())
	assert.Equal(t, 10, ts.End())
	assert.Equal(t, 3, ts.Step())

	_, err = slice.MustNew(none, none, some(-1)).Tensor(10)
	assert.ErrorIs(t, err, slice.ErrDimension)

	_, err = slice.Between(5, 2).Tensor(10)
	assert.ErrorIs(t, err, slice.ErrDimension)
	assert.Contains(t, err.Error(), "selects nothing")

	_, err = slice.Full().Tensor(0)
	assert.ErrorIs(t, err, slice.ErrDimension)
}

func TestTensorView(t *testing.T) {
	backing := make([]float64, 10)
	for i := range backing {
		backing[i] = float64(i)
	}
	dense := tensor.New(tensor.WithShape(10), tensor.WithBacking(backing))

	s := slice.Between(-4, -1)
	ts, err := s.Tensor(int64(dense.Shape()[0]))
	require.NoError(t, err)

	view, err := dense.Slice(ts)
	require.NoError(t, err)
	assert.Equal(t, int(s.GetLength(10)), view.Shape().TotalSize())

	for i, idx := range s.Resolve(10).Indices() {
		v, err := view.At(i)
		require.NoError(t, err)
		assert.Equal(t, float64(idx), v)
	}
}
