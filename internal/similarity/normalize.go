package similarity

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes raw text for token extraction: lowercase,
// punctuation and symbols replaced by spaces, whitespace collapsed.
// Different users write "VPN" vs "vpn" or "error!" vs "error"; after
// normalization they compare equal. The function is idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	// Fields collapses runs of whitespace and trims the edges
	return strings.Join(strings.Fields(b.String()), " ")
}

// isWordRune reports whether r counts as a word character
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
