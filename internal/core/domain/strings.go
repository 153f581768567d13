package domain

import (
	"strings"
	"unicode"
)

func trim(s string) string  { return strings.TrimSpace(s) }
func upper(s string) string { return strings.ToUpper(s) }
func lower(s string) string { return strings.ToLower(s) }

// SplitIDs splits a comma-separated id list and trims each element.
// Empty elements are kept so callers can count and reject them.
// A blank input yields nil.
func SplitIDs(s string) []string {
	if trim(s) == "" {
		return nil
	}
	parts := strings.Split(trim(s), ",")
	for i := range parts {
		parts[i] = trim(parts[i])
	}
	return parts
}

// StripWhitespace removes every whitespace rune, including interior newlines.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
