package slice

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/slatedb/slice-go/internal/assert"
	"github.com/slatedb/slice-go/internal/types"
)

// Slice is a start:stop:step specification for a single axis, resolved
// against the length of that axis only when it is applied.
//
// Start and Stop may be absent, negative (counting from the end of the
// axis) or out of range; resolution clamps them. The zero value is the
// full slice `:`.
type Slice struct {
	start mo.Option[int64]
	stop  mo.Option[int64]
	// absent when the step is 1, so that equal slices compare equal
	step mo.Option[int64]
}

// New returns the slice start:stop:step. A step of zero is rejected
// with a DimensionError.
func New(start, stop, step mo.Option[int64]) (Slice, error) {
	if v, ok := step.Get(); ok {
		if v == 0 {
			return Slice{}, types.ErrDim("Step must not be zero.")
		}
		if v == 1 {
			step = mo.None[int64]()
		}
	}
	return Slice{start: start, stop: stop, step: step}, nil
}

// MustNew is like New but panics if the step is zero.
func MustNew(start, stop, step mo.Option[int64]) Slice {
	s, err := New(start, stop, step)
	if err != nil {
		panic(err)
	}
	return s
}

// Stop returns the slice 0:stop.
func Stop(stop int64) Slice {
	return Slice{start: mo.Some[int64](0), stop: mo.Some(stop)}
}

// Between returns the slice start:stop.
func Between(start, stop int64) Slice {
	return Slice{start: mo.Some(start), stop: mo.Some(stop)}
}

// Full returns the slice `:`, which selects a whole axis.
func Full() Slice {
	return Slice{}
}

func (s Slice) Start() mo.Option[int64] {
	return s.start
}

func (s Slice) Stop() mo.Option[int64] {
	return s.stop
}

// Step is never zero.
func (s Slice) Step() int64 {
	return s.step.OrElse(1)
}

// GetStart returns the first index visited on an axis of length dim.
func (s Slice) GetStart(dim int64) int64 {
	if start, ok := s.start.Get(); ok {
		if start < 0 {
			return max(0, start+dim)
		}
		return min(start, dim-1)
	}
	if s.Step() > 0 {
		return 0
	}
	return dim - 1
}

// GetStop returns the exclusive bound of the iteration on an axis of
// length dim. It is -1 when a reverse iteration runs through index 0.
func (s Slice) GetStop(dim int64) int64 {
	if stop, ok := s.stop.Get(); ok {
		if stop < 0 {
			return max(-1, stop+dim)
		}
		return min(stop, dim)
	}
	if s.Step() > 0 {
		return dim
	}
	return -1
}

// GetLength returns the number of elements after slicing an axis of length dim.
func (s Slice) GetLength(dim int64) int64 {
	if dim <= 0 {
		return 0
	}
	step := s.Step()
	span := s.GetStop(dim) - s.GetStart(dim)
	// spans pointing against the step are empty, even when |step| > 1
	if (step > 0 && span <= 0) || (step < 0 && span >= 0) {
		return 0
	}
	adjust := int64(-1)
	if step < 0 {
		adjust = 1
	}
	return max(0, (span+adjust)/step+1)
}

// Resolve applies the slice to an axis of length dim.
func (s Slice) Resolve(dim int64) Range {
	r := Range{
		Start: s.GetStart(dim),
		Stop:  s.GetStop(dim),
		Step:  s.Step(),
		Len:   s.GetLength(dim),
	}
	assert.True(r.Len >= 0, "slice %s resolved to negative length %d on dim %d", s, r.Len, dim)
	return r
}

// String renders the slice in the syntax accepted by Parse.
func (s Slice) String() string {
	var b strings.Builder
	if v, ok := s.start.Get(); ok {
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(':')
	if v, ok := s.stop.Get(); ok {
		b.WriteString(strconv.FormatInt(v, 10))
	}
	if v, ok := s.step.Get(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

func (s Slice) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
