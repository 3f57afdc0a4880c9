package analysis

import (
	"strings"
	"unicode"
)

// Words splits text on runs of Unicode whitespace. It is the split rule for
// word counting and sentiment scoring.
func Words(text string) []string {
	return strings.Fields(text)
}

// StemTokens lower-cases text and splits it on runs of whitespace and commas.
// Empty segments are dropped.
func StemTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}
