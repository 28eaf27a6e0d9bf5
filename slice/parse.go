package slice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/slatedb/slice-go/internal/types"
)

// Parse reads a slice expression written the way it appears between
// brackets: `stop`, `start:stop` or `start:stop:step`. Empty fields are
// absent, so `::-1` reverses an axis and `:` selects all of it.
func Parse(expr string) (Slice, error) {
	fields := strings.Split(expr, ":")
	if len(fields) > 3 {
		return Slice{}, types.ErrParsef(expr, "expected at most 3 fields, got %d", len(fields))
	}

	var bounds [3]mo.Option[int64]
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Slice{}, &types.ParseError{Expr: expr, Err: err}
		}
		bounds[i] = mo.Some(v)
	}

	if len(fields) == 1 {
		stop, ok := bounds[0].Get()
		if !ok {
			return Slice{}, types.ErrParsef(expr, "empty expression")
		}
		return Stop(stop), nil
	}

	s, err := New(bounds[0], bounds[1], bounds[2])
	if err != nil {
		return Slice{}, fmt.Errorf("while parsing %q: %w", expr, err)
	}
	return s, nil
}
