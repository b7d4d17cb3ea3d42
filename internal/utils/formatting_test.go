package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Services", 20, "Services"},
		{"Strength Training / Weight Gain", 12, "Strength..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadString(t *testing.T) {
	if got := PadString("ab", 5, '.'); got != "ab..." {
		t.Errorf("Expected 'ab...', got '%s'", got)
	}
	if got := PadString("abcdef", 3, '.'); got != "abcdef" {
		t.Errorf("Expected unchanged string, got '%s'", got)
	}
}

func TestFormatSelection(t *testing.T) {
	if got := FormatSelection("Weight Loss", true); got != "‹ Weight Loss ›" {
		t.Errorf("Unexpected focused selection '%s'", got)
	}
	if got := FormatSelection("Weight Loss", false); strings.ContainsAny(got, "‹›") {
		t.Errorf("Expected no arrows when unfocused, got '%s'", got)
	}
}

func TestFormatCopyright(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	got := FormatCopyright("Prem Rishi Fitness", now)
	if got != "© 2026 Prem Rishi Fitness. All rights reserved." {
		t.Errorf("Unexpected copyright '%s'", got)
	}
}

func TestFormatKeyHint(t *testing.T) {
	if got := FormatKeyHint("1", "Home"); got != "[1] Home" {
		t.Errorf("Unexpected hint '%s'", got)
	}
}
