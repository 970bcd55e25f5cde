package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsToken reports whether token occurs in text as a whole word.
func ContainsToken(text, token string) bool {
	return CountTokens(text, token) > 0
}

// CountTokens counts non-overlapping occurrences of token in text that are not
// glued to surrounding letters, so "go" is not found inside "google" and
// "java" is not found inside "javascript". A trailing plural "s" is accepted.
// Both arguments are expected in the same case.
func CountTokens(text, token string) int {
	if token == "" {
		return 0
	}

	count := 0
	for start := 0; start <= len(text)-len(token); {
		i := strings.Index(text[start:], token)
		if i < 0 {
			break
		}
		i += start
		end := i + len(token)

		if bounded(text, i, end) {
			count++
			start = end
			continue
		}
		start = i + 1
	}
	return count
}

func bounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}

	if end >= len(text) {
		return true
	}

	r, size := utf8.DecodeRuneInString(text[end:])
	if r == 's' {
		end += size
		if end >= len(text) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(text[end:])
	}
	return !unicode.IsLetter(r)
}
