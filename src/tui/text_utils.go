package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of text, accounting for multi-byte characters
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens text to at most width visual columns. When ellipsis is
// true and the text had to be cut, the last three columns become "...".
func Truncate(s string, width int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if width <= 0 {
		return ""
	}
	if VisualWidth(s) <= width {
		return s
	}
	if ellipsis && width > 3 {
		return runewidth.Truncate(s, width-3, "") + "..."
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateAndPad truncates text and pads with spaces to exactly width columns.
// Used for table cells so columns stay aligned.
func TruncateAndPad(s string, width int, ellipsis bool) string {
	s = Truncate(s, width, ellipsis)
	if pad := width - VisualWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// Wrap breaks text into lines of at most width columns, preferring word
// boundaries. A single word wider than width is split mid-word.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		for VisualWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
		}
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case VisualWidth(current)+1+VisualWidth(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	return strings.Join(lines, "\n")
}
