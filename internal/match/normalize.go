package match

import (
	"strings"
	"unicode"
)

// noiseTokens are words that carry no identity for matching purposes.
// A token is dropped when it appears after the bracketed segments are
// removed, so "Song - 2011 Remaster" and "Song" normalize identically.
var noiseTokens = map[string]struct{}{
	"clean":      {},
	"deluxe":     {},
	"edit":       {},
	"edition":    {},
	"explicit":   {},
	"feat":       {},
	"featuring":  {},
	"ft":         {},
	"live":       {},
	"mix":        {},
	"mono":       {},
	"radio":      {},
	"remaster":   {},
	"remastered": {},
	"stereo":     {},
	"version":    {},
}

// Normalize canonicalizes a title or artist string for comparison.
//
// It lowercases, strips segments in (), [] and {}, drops noise tokens
// and punctuation, and collapses whitespace. If stripping removes
// everything, the lowercased input with collapsed whitespace is
// returned instead so a track named "(Remastered)" still matches
// itself.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	stripped := stripBracketed(lowered)
	stripped = cleanSeparators(stripped)

	var kept []string
	for _, token := range strings.Fields(stripped) {
		if _, noise := noiseTokens[token]; noise {
			continue
		}
		kept = append(kept, token)
	}

	out := strings.Join(kept, " ")
	if out == "" {
		return strings.Join(strings.Fields(lowered), " ")
	}
	return out
}

// stripBracketed removes segments enclosed in (), [] or {}, including
// nested ones.
func stripBracketed(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// cleanSeparators replaces every rune that is not a letter or digit
// with a space so punctuation never splits a match.
func cleanSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
}
