package span

import (
	"testing"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		end     int64
		wantErr bool
	}{
		{"valid", 1126259446, 1126345846, false},
		{"empty interval", 100, 100, false},
		{"inverted", 200, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.start, tt.end, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d, %d) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidSpan) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSpan)
				}
				return
			}
			if s.Start != tt.start || s.End != tt.end {
				t.Errorf("span = %v, want [%d, %d)", s, tt.start, tt.end)
			}
		})
	}
}

func TestContains(t *testing.T) {
	s, err := New(100, 200, "day")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		t    int64
		want bool
	}{
		{100, true},  // closed at start
		{150, true},  // interior
		{200, false}, // open at end
		{99, false},
		{201, false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.t); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestDurationAndString(t *testing.T) {
	s, err := New(100, 186500, "day")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Duration(); got != 186400 {
		t.Errorf("Duration() = %d, want %d", got, 186400)
	}
	if got := s.String(); got != "[100, 186500)" {
		t.Errorf("String() = %q, want %q", got, "[100, 186500)")
	}
}
