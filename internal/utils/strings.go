// Package utils holds small string helpers shared by the dictionary and
// suggestion packages.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldCase lower-cases a word for the case-insensitive indexes.
// All case-folded keys in the engine go through here so the folding
// rule stays in one place.
func FoldCase(s string) string {
	return strings.ToLower(s)
}

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// HasSuffixIgnoreCase checks if string has suffix case-insensitively
func HasSuffixIgnoreCase(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}

// Reverse returns the rune-wise reversal of s. Suffix index keys are stored
// reversed so a patricia trie can serve suffix queries.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsValidToken reports whether a token is worth checking at all:
// valid UTF-8 with at least one letter.
func IsValidToken(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
