package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// split segments cleaned text into trimmed sentences using the punkt
// english model, the same segmentation the extractors see.
func (n *Normalizer) split(text string) []string {
	var out []string
	for _, s := range n.tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// clean applies NFC normalization, strips control runes, and collapses
// whitespace runs to single spaces.
func clean(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
