// Package lexical implements the deterministic, network-free analysis path:
// text normalization, keyword extraction, TF-IDF cosine similarity, and the
// lexical ATS scorer built on top of them.
package lexical

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resumelens/internal/errors"
)

// Normalize canonicalizes free text for keyword and similarity work: it
// lowercases, strips everything except ASCII letters and whitespace, collapses
// whitespace runs to single spaces, and trims. Returns an error for input that
// is not valid text.
func Normalize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", errors.NewInvalidInputError("input is not valid text", nil)
	}

	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " "), nil
}

// Tokenize splits normalized text into word tokens.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
