package tui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		ellipsis bool
		expected string
	}{
		{"fits unchanged", "short", 10, true, "short"},
		{"exact width unchanged", "12345", 5, true, "12345"},
		{"cut with ellipsis", "a long candidate name", 10, true, "a long ..."},
		{"cut without ellipsis", "a long candidate name", 10, false, "a long can"},
		{"ellipsis skipped when too narrow", "abcdef", 3, true, "abc"},
		{"zero width", "anything", 0, true, ""},
		{"trims surrounding space", "  padded  ", 20, true, "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width, tt.ellipsis)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d, %v) = %q, expected %q",
					tt.input, tt.width, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("ab", 5, false)
	if got != "ab   " {
		t.Errorf("TruncateAndPad(\"ab\", 5) = %q, expected %q", got, "ab   ")
	}
	if w := VisualWidth(TruncateAndPad("日本語のテキスト", 6, false)); w != 6 {
		t.Errorf("wide-rune cell width = %d, expected 6", w)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits on one line", "one two", 10, "one two"},
		{"breaks on word boundary", "alpha beta gamma", 11, "alpha beta\ngamma"},
		{"long word split mid-word", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"zero width passes through", "untouched", 0, "untouched"},
		{"empty text passes through", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("Wrap(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestWrap_NoLineExceedsWidth(t *testing.T) {
	text := "a moderately long summary of a candidate with deep pharmaceutical litigation experience"
	for _, line := range strings.Split(Wrap(text, 20), "\n") {
		if VisualWidth(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
}
