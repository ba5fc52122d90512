package ocr

import (
	"strings"
)

// cleanupRules are applied in order on every pass.
var cleanupRules = []struct{ old, new string }{
	{"\n", " "},
	{"__", " "},
	{" - ", " "},
	{`-""`, " "},
	{"|", ""},
	{"!", ""},
	{`\s`, " "},
}

// CleanText normalizes raw OCR output into a single line.
//
// Newlines become spaces; "__", " - " and `-""` become spaces; '|' and '!'
// are removed; the literal two-character sequence `\s` becomes a space.
// Leading whitespace is dropped and runs of whitespace collapse to one
// space. Passes repeat until the text stops changing, so
// CleanText(CleanText(s)) == CleanText(s).
func CleanText(raw string) string {
	s := raw
	for {
		next := cleanPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanPass(s string) string {
	for _, r := range cleanupRules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return strings.Join(strings.Fields(s), " ")
}
