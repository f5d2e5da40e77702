// Package sanitize cleans untrusted backend text before it reaches the
// terminal. Candidate summaries, risks, suggestions and citation snippets come
// from LLM and web-search output; embedded escape sequences or control
// characters must never be rendered as terminal commands.
package sanitize

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Text strips ANSI escape sequences and non-printing control characters,
// preserving newlines and tabs for multi-line fields.
func Text(s string) string {
	s = ansi.Strip(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Field cleans a single-line display field: control characters are removed
// and any newlines collapse to single spaces.
func Field(s string) string {
	s = Text(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Candidate-facing helpers operate on slices in place of repeated call sites.

// Fields cleans every element of a string slice as a single-line field.
func Fields(ss []string) []string {
	if len(ss) == 0 {
		return ss
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = Field(s)
	}
	return out
}
