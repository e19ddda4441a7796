// Package grid partitions an ordered sequence of figures into rows of a
// 12-unit responsive column grid.
//
// # Overview
//
// A [Spec] describes how many figures appear on each row of a page. Each
// row descriptor gives a figure count and, optionally, a divisor of the
// 12-unit grid used to center the row with empty side margins. The final
// descriptor repeats as necessary when a page holds more figures than the
// explicit rows cover.
//
// # Usage
//
// Partition the first N figures of a page:
//
//	spec := grid.Spec{{Count: 1}, {Count: 2, Divisor: 3}}
//	placements, err := grid.Partition(4, spec)
//
// Each [Placement] carries the row index, column width and centering
// offset in 12ths, and markers for the first and last column of its row.
package grid

import (
	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

// Columns is the total width of the grid in column units.
const Columns = 12

// Row describes one row of the grid: how many figures it holds, and
// optionally how many equal-width slots those figures are measured
// against. A zero Divisor means the figures span the full row.
//
// With a Divisor, each figure is 12/Divisor units wide and the unused
// remainder is split evenly into side margins, so Count figures sit
// centered. The remainder must be even or the row cannot be centered.
type Row struct {
	Count   int
	Divisor int
}

// Spec is the ordered sequence of row descriptors for a page. The last
// descriptor logically repeats for any figures beyond the explicit rows.
type Spec []Row

// Placement locates one figure within the grid.
type Placement struct {
	Row      int  // zero-based row index
	Width    int  // column width in 12ths
	Offset   int  // centering offset in 12ths, first column of the row only
	RowStart bool // first figure of its row
	RowEnd   bool // last figure of its row
}

// DefaultSpec returns the layout used when a page configures none: a
// single full-width row for a lone figure, otherwise repeating rows of
// two.
func DefaultSpec(n int) Spec {
	if n == 1 {
		return Spec{{Count: 1}}
	}
	return Spec{{Count: 2}}
}

// validate checks a single row descriptor against the 12-unit grid.
func validate(r Row) error {
	if r.Count < 1 {
		return errors.New(errors.ErrCodeInvalidLayout,
			"invalid row count %d: must be at least 1", r.Count)
	}
	if r.Count > Columns {
		return errors.New(errors.ErrCodeInvalidLayout,
			"cannot print more than %d figures in a single row (got %d)",
			Columns, r.Count)
	}
	if r.Divisor != 0 {
		if r.Divisor < 1 || r.Divisor > Columns {
			return errors.New(errors.ErrCodeInvalidLayout,
				"invalid row divisor %d: must be between 1 and %d",
				r.Divisor, Columns)
		}
		if r.Count > r.Divisor {
			return errors.New(errors.ErrCodeInvalidLayout,
				"row of %d figures does not fit %d slots", r.Count, r.Divisor)
		}
	}
	return nil
}

// Partition places n figures into the grid described by spec and returns
// one placement per figure, in order.
//
// When spec is empty, DefaultSpec(n) is used. Column widths use integer
// floor division of the 12-unit grid, so a count that does not evenly
// divide 12 yields narrower columns rather than an error. A centered row
// whose remainder is odd fails with ErrCodeInvalidLayout.
//
// Zero figures yields an empty placement list with no rows emitted.
func Partition(n int, spec Spec) ([]Placement, error) {
	if n == 0 {
		return nil, nil
	}
	if len(spec) == 0 {
		spec = DefaultSpec(n)
	}

	rows := make(Spec, 0, len(spec))
	total := 0
	for _, r := range spec {
		if err := validate(r); err != nil {
			return nil, err
		}
		rows = append(rows, r)
		total += r.Count
	}
	// Repeat the final descriptor until every figure is covered.
	for last := rows[len(rows)-1]; total < n; total += last.Count {
		rows = append(rows, last)
	}

	placements := make([]Placement, 0, n)
	row, col := 0, 0
	for j := 0; j < n; j++ {
		r := rows[row]
		p := Placement{Row: row, RowStart: col == 0}
		if r.Divisor != 0 {
			p.Width = Columns / r.Divisor
			remainder := Columns - p.Width*r.Count
			if remainder%2 != 0 {
				return nil, errors.New(errors.ErrCodeInvalidLayout,
					"cannot center column of width %d in a %d-column format",
					p.Width, Columns)
			}
			if p.RowStart {
				p.Offset = remainder / 2
			}
		} else {
			p.Width = Columns / r.Count
		}
		// A row ends when full or when the figures run out.
		if col+1 == r.Count || j == n-1 {
			p.RowEnd = true
			placements = append(placements, p)
			row++
			col = 0
			continue
		}
		placements = append(placements, p)
		col++
	}
	return placements, nil
}
