package wiktionary

import "strings"

// Normalize cleans text extracted from page markup: parenthesized
// substrings are removed with their delimiters, runs of whitespace
// collapse to a single space, and the result is trimmed.
//
// The function is idempotent. An opening parenthesis that is never
// closed drops the rest of the string; a stray closing parenthesis is
// kept as ordinary text.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	depth := 0
	for _, r := range raw {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			} else {
				b.WriteRune(r)
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
