package slice

import (
	"math"

	"gorgonia.org/tensor"

	"github.com/slatedb/slice-go/internal/types"
)

// maxTensorIndex is the largest resolved bound a tensor view can address.
var maxTensorIndex int64 = math.MaxInt

// rs implements tensor.Slice
type rs struct {
	start, end, step int
}

func (s rs) Start() int { return s.start }
func (s rs) End() int   { return s.end }
func (s rs) Step() int  { return s.step }

// Tensor resolves the slice against an axis of length dim and returns it
// in the form accepted by (*tensor.Dense).Slice. Gorgonia views only walk
// forward over a non-empty range of int indices, so negative steps, empty
// ranges and bounds outside the int range return a DimensionError.
func (s Slice) Tensor(dim int64) (tensor.Slice, error) {
	r := s.Resolve(dim)
	if r.Step < 0 {
		return nil, types.ErrDim("slice %s has negative step; tensor views require a positive step", s)
	}
	if r.Empty() {
		return nil, types.ErrDim("slice %s selects nothing from an axis of length %d", s, dim)
	}
	for _, v := range []int64{r.Start, r.Stop, r.Step} {
		if v > maxTensorIndex || v < -maxTensorIndex {
			return nil, types.ErrDim("slice %s on an axis of length %d exceeds the int range of tensor views", s, dim)
		}
	}
	return rs{start: int(r.Start), end: int(r.Stop), step: int(r.Step)}, nil
}
