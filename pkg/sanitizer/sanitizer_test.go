package sanitizer

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading and blank lines",
			input: "=History=\n\nParis is the capital of France.\n",
			want:  "Paris is the capital of France.",
		},
		{
			name:  "mediawiki style headings",
			input: "Intro line.\n\n== Early life ==\n=== Childhood ===\nBorn in a city.\n",
			want:  "Intro line. Born in a city.",
		},
		{
			name:  "date in parentheses",
			input: "The sky is blue. It rained yesterday (March 2020). Birds fly south in winter.",
			want:  "The sky is blue. It rained yesterday. Birds fly south in winter.",
		},
		{
			name:  "adjacent parentheticals before period",
			input: "It rained yesterday (a) (b). Then it stopped.",
			want:  "It rained yesterday. Then it stopped.",
		},
		{
			name:  "one nested level",
			input: "Albert Einstein (14 March 1879 (Ulm) – 18 April 1955) was a physicist.",
			want:  "Albert Einstein was a physicist.",
		},
		{
			name:  "parenthetical mid sentence collapses spaces",
			input: "Lisbon (Portuguese: Lisboa) is a city.",
			want:  "Lisbon is a city.",
		},
		{
			name:  "carriage returns",
			input: "First line.\r\n\r\n==Head==\r\nSecond line.\r\n",
			want:  "First line. Second line.",
		},
		{
			name:  "unbalanced parenthesis is kept",
			input: "An open ( paren stays.",
			want:  "An open ( paren stays.",
		},
		{
			name:  "only markup",
			input: "\n\n= Title =\n   \n",
			want:  "",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_NoBlankOrMarkupLines(t *testing.T) {
	inputs := []string{
		"a\n\n=b=\nc\n  \n= d\ne",
		"==x==\n\n\n",
		"  leading\n\ttabbed\n=\n",
	}
	for _, in := range inputs {
		out := Sanitize(in)
		for _, line := range strings.Split(out, "\n") {
			trimmed := strings.TrimSpace(line)
			if out != "" && trimmed == "" {
				t.Errorf("Sanitize(%q) produced a blank line: %q", in, out)
			}
			if strings.HasPrefix(trimmed, "=") {
				t.Errorf("Sanitize(%q) produced a markup line: %q", in, out)
			}
		}
	}
}

func TestRemoveParentheticals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"flat", "a (b) c", "a c"},
		{"nested once", "a (b (c) d) e", "a e"},
		{"two spans", "x (1) y (2) z", "x y z"},
		{"before comma", "Rome (Italy), a city", "Rome, a city"},
		{"adjacent spans before period", "yesterday (a) (b). x", "yesterday. x"},
		{"adjacent spans mid sentence", "a (b) (c) d", "a d"},
		{"deeper nesting is peeled", "a (b (c (d)) e) f", "a f"},
		{"no parens", "plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveParentheticals(tt.input)
			if got != tt.want {
				t.Errorf("RemoveParentheticals(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.ContainsAny(got, "()") {
				t.Errorf("RemoveParentheticals(%q) left parentheses: %q", tt.input, got)
			}
		})
	}
}

func TestRemoveBlankLinesAndMarkup(t *testing.T) {
	got := RemoveBlankLinesAndMarkup("one\n\n  =two=\nthree\n")
	if got != "one three" {
		t.Errorf("RemoveBlankLinesAndMarkup() = %q, want %q", got, "one three")
	}
}
