package textutil

import "testing"

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1048576, "1,048,576"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(1, 4); got != "25.0%" {
		t.Errorf("Percent(1, 4) = %q", got)
	}
	if got := Percent(3, 0); got != "-" {
		t.Errorf("Percent(3, 0) = %q", got)
	}
}

func TestOrDash(t *testing.T) {
	if got := OrDash("  "); got != "-" {
		t.Errorf("OrDash(blank) = %q", got)
	}
	if got := OrDash("glider.png"); got != "glider.png" {
		t.Errorf("OrDash(value) = %q", got)
	}
}
