package slice

import (
	"log/slog"
)

// Range is a Slice resolved against a concrete axis length. It visits
// Start, Start+Step, ... for Len elements, stopping before Stop.
type Range struct {
	Start int64
	Stop  int64
	Step  int64
	Len   int64
}

func (r Range) Empty() bool {
	return r.Len == 0
}

// Indices returns every index the range visits, in iteration order.
func (r Range) Indices() []int64 {
	indices := make([]int64, 0, r.Len)
	for i := int64(0); i < r.Len; i++ {
		indices = append(indices, r.Start+i*r.Step)
	}
	return indices
}

func (r Range) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("start", r.Start),
		slog.Int64("stop", r.Stop),
		slog.Int64("step", r.Step),
		slog.Int64("len", r.Len),
	)
}
