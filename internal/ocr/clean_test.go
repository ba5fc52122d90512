package ocr

import (
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"newlines", "hello\nworld\n\nagain\n", "hello world again"},
		{"leading whitespace", "  \n\t hello", "hello"},
		{"double underscore", "a__b", "a b"},
		{"spaced dash", "a - b", "a b"},
		{"dash in word kept", "well-known", "well-known"},
		{"dash quote quote", `a-""b`, "a b"},
		{"pipes and bangs removed", "|Hello!| there!", "Hello there"},
		{"literal backslash s", `one\stwo`, "one two"},
		{"whitespace runs", "a    b\t\tc", "a b c"},
		{"repeated spaced dashes", "a - - - b", "a b"},
		{"underscore run", "x______y", "x y"},
		{"mixed", "  THE |MEMORIAL| \n\n__ 1943 - !", "THE MEMORIAL 1943"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"a - - b",
		"a -- - b",
		"x___y",
		`a\\ss`,
		"-\"\"-\"\"",
		" - - - ",
		"|!|!|",
		"line one\nline two\n\n\nline three",
		"   leading and trailing   ",
		"a_ _b",
		`\s\s\s`,
	}

	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
