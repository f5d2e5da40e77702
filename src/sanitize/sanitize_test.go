package sanitize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Dr. Jane Smith, toxicologist",
			want:  "Dr. Jane Smith, toxicologist",
		},
		{
			name:  "sgr sequence stripped",
			input: "\x1b[31mhigh risk\x1b[0m clause",
			want:  "high risk clause",
		},
		{
			name:  "newlines and tabs preserved",
			input: "line one\n\tline two",
			want:  "line one\n\tline two",
		},
		{
			name:  "control characters removed",
			input: "bell\x07 and backspace\x08 gone",
			want:  "bell and backspace gone",
		},
		{
			name:  "cursor movement stripped",
			input: "before\x1b[2Jafter",
			want:  "beforeafter",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "newlines collapse to spaces",
			input: "Acme\nForensics\nLLC",
			want:  "Acme Forensics LLC",
		},
		{
			name:  "runs of whitespace collapse",
			input: "  New   York \t NY ",
			want:  "New York NY",
		},
		{
			name:  "escape plus newline",
			input: "\x1b[1mPharma\x1b[0m\nBio",
			want:  "Pharma Bio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.input); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := Fields([]string{"a\nb", "\x1b[31mc\x1b[0m"})
	want := []string{"a b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	if out := Fields(nil); out != nil {
		t.Errorf("Fields(nil) = %v, want nil", out)
	}
}
