package state

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input State
		want  string
	}{
		{"simple", "Locked", "locked"},
		{"all", All, "all"},
		{"spaces", "Science Mode", "science_mode"},
		{"punctuation run", "H1:ODC-MASTER (obs)", "h1_odc_master_obs_"},
		{"already sanitized", "science_mode", "science_mode"},
		{"digits", "O4b", "o4b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []State{"Locked", "Science Mode!", "H1:DMT-UP", "  odd  spacing  "}
	for _, s := range inputs {
		once := Sanitize(s)
		twice := Sanitize(State(once))
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestFragmentName(t *testing.T) {
	if got := State("Locked").FragmentName(); got != "locked.html" {
		t.Errorf("FragmentName() = %q, want %q", got, "locked.html")
	}
	if got := State("Science Mode").FragmentName(); got != "science_mode.html" {
		t.Errorf("FragmentName() = %q, want %q", got, "science_mode.html")
	}
}

func TestIsAll(t *testing.T) {
	if !All.IsAll() {
		t.Error("All.IsAll() = false, want true")
	}
	if State("Locked").IsAll() {
		t.Error(`State("Locked").IsAll() = true, want false`)
	}
}
