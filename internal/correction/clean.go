package correction

import (
	"strings"
	"unicode"
)

// CleanText lower-cases text, drops every rune that is not a letter, mark,
// underscore or whitespace (digits included), and collapses whitespace runs
// into a single space. Leading and trailing space is kept, collapsed.
//
//	CleanText("¿Dónde están  los 3 niños?") // "dónde están los niños"
func CleanText(text string) string {
	var b strings.Builder

	b.Grow(len(text))

	inSpace := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte(' ')
			}

			inSpace = true

			continue
		case unicode.IsLetter(r), unicode.IsMark(r), r == '_':
			b.WriteRune(r)
		default:
			continue
		}

		inSpace = false
	}

	return b.String()
}
