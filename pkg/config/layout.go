package config

import (
	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/grid"
)

// ParseLayout converts the raw TOML layout array into a grid.Spec. Each
// element is either an integer count or a two-integer [count, divisor]
// array; anything else fails with ErrCodeInvalidLayout. An empty or
// missing layout yields a nil spec, deferring to the grid defaults.
//
// The layout is plain data parsed exactly once here; it is never
// interpreted or evaluated.
func ParseLayout(raw []any) (grid.Spec, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	spec := make(grid.Spec, 0, len(raw))
	for _, v := range raw {
		switch el := v.(type) {
		case int64:
			spec = append(spec, grid.Row{Count: int(el)})
		case []any:
			if len(el) != 2 {
				return nil, errors.New(errors.ErrCodeInvalidLayout,
					"layout row must be [count, divisor], got %d elements", len(el))
			}
			count, ok1 := el[0].(int64)
			divisor, ok2 := el[1].(int64)
			if !ok1 || !ok2 {
				return nil, errors.New(errors.ErrCodeInvalidLayout,
					"layout row values must be integers, got %v", el)
			}
			spec = append(spec, grid.Row{Count: int(count), Divisor: int(divisor)})
		default:
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"cannot parse layout element %v (%T)", v, v)
		}
	}
	return spec, nil
}
