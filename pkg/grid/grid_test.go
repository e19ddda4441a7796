package grid

import (
	"testing"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

func TestPartitionRowShapes(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		spec      Spec
		wantRows  []int // row index per figure
		wantWidth []int
	}{
		{
			name:      "single figure default",
			n:         1,
			spec:      nil,
			wantRows:  []int{0},
			wantWidth: []int{12},
		},
		{
			name:      "default pairs",
			n:         5,
			spec:      nil,
			wantRows:  []int{0, 0, 1, 1, 2},
			wantWidth: []int{6, 6, 6, 6, 6},
		},
		{
			name:      "explicit rows with repetition",
			n:         6,
			spec:      Spec{{Count: 1}, {Count: 2}, {Count: 3}},
			wantRows:  []int{0, 1, 1, 2, 2, 2},
			wantWidth: []int{12, 6, 6, 4, 4, 4},
		},
		{
			name:      "last descriptor repeats",
			n:         7,
			spec:      Spec{{Count: 1}, {Count: 3}},
			wantRows:  []int{0, 1, 1, 1, 2, 2, 2},
			wantWidth: []int{12, 4, 4, 4, 4, 4, 4},
		},
		{
			name:      "floor division narrowing",
			n:         5,
			spec:      Spec{{Count: 5}},
			wantRows:  []int{0, 0, 0, 0, 0},
			wantWidth: []int{2, 2, 2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.n, tt.spec)
			if err != nil {
				t.Fatalf("Partition() error = %v", err)
			}
			if len(got) != tt.n {
				t.Fatalf("len(placements) = %d, want %d", len(got), tt.n)
			}
			for i, p := range got {
				if p.Row != tt.wantRows[i] {
					t.Errorf("figure %d: Row = %d, want %d", i, p.Row, tt.wantRows[i])
				}
				if p.Width != tt.wantWidth[i] {
					t.Errorf("figure %d: Width = %d, want %d", i, p.Width, tt.wantWidth[i])
				}
			}
		})
	}
}

// Worked example: layout [1, (2, 3)] with 4 figures. One full-width figure,
// then centered pairs of third-width columns, with the final row holding
// only the leftover figure at the same width and offset.
func TestPartitionCenteredExample(t *testing.T) {
	got, err := Partition(4, Spec{{Count: 1}, {Count: 2, Divisor: 3}})
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []Placement{
		{Row: 0, Width: 12, Offset: 0, RowStart: true, RowEnd: true},
		{Row: 1, Width: 4, Offset: 2, RowStart: true},
		{Row: 1, Width: 4, RowEnd: true},
		{Row: 2, Width: 4, Offset: 2, RowStart: true, RowEnd: true},
	}
	for i, p := range got {
		if p != want[i] {
			t.Errorf("figure %d: placement = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestPartitionCenteringRemainders(t *testing.T) {
	// width = 12/divisor; remainder = 12 - width*count.
	tests := []struct {
		name       string
		row        Row
		wantErr    bool
		wantOffset int
	}{
		{"even remainder", Row{Count: 2, Divisor: 3}, false, 2},  // 12-8=4
		{"odd remainder", Row{Count: 3, Divisor: 4}, true, 0},    // 12-9=3
		{"zero remainder", Row{Count: 4, Divisor: 4}, false, 0},  // 12-12=0
		{"wide margins", Row{Count: 1, Divisor: 6}, false, 5},    // 12-2=10
		{"odd single", Row{Count: 1, Divisor: 8}, true, 0},       // 12-1=11
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.row.Count, Spec{tt.row})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Partition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidLayout) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
				}
				return
			}
			if got[0].Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", got[0].Offset, tt.wantOffset)
			}
			for _, p := range got[1:] {
				if p.Offset != 0 {
					t.Errorf("non-start column has offset %d, want 0", p.Offset)
				}
			}
		})
	}
}

func TestPartitionValidation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		spec Spec
	}{
		{"count above grid width", 1, Spec{{Count: 13}}},
		{"zero count", 1, Spec{{Count: 0}}},
		{"negative count", 1, Spec{{Count: -2}}},
		{"divisor above grid width", 1, Spec{{Count: 1, Divisor: 13}}},
		{"count exceeds divisor", 4, Spec{{Count: 4, Divisor: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(tt.n, tt.spec)
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("Partition() error = %v, want layout error", err)
			}
		})
	}
}

func TestPartitionZeroFigures(t *testing.T) {
	got, err := Partition(0, Spec{{Count: 13}})
	if err != nil {
		t.Fatalf("Partition(0) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Partition(0) emitted %d placements, want 0", len(got))
	}
}

func TestPartitionEveryFigurePlacedOnce(t *testing.T) {
	specs := []Spec{
		nil,
		{{Count: 1}},
		{{Count: 1}, {Count: 2}, {Count: 3}},
		{{Count: 2, Divisor: 3}},
		{{Count: 12}},
	}
	for _, spec := range specs {
		for n := 1; n <= 25; n++ {
			got, err := Partition(n, spec)
			if err != nil {
				t.Fatalf("Partition(%d, %v) error = %v", n, spec, err)
			}
			if len(got) != n {
				t.Fatalf("Partition(%d, %v) placed %d figures", n, spec, len(got))
			}
			// Rows must be contiguous and start flags consistent.
			row := 0
			for i, p := range got {
				if p.Row != row {
					t.Fatalf("figure %d: row %d, want %d", i, p.Row, row)
				}
				if p.RowEnd {
					row++
				}
			}
			if !got[len(got)-1].RowEnd {
				t.Fatalf("final figure does not close its row")
			}
		}
	}
}
