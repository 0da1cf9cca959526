package tagger

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters are punctuation marks treated as token boundaries.
type Delimiters []string

// DefaultDelimiters is the Spanish-oriented punctuation set.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		"!", "¡", "?", "¿", "%", ",", "...", ".", "…", ":", ";", "<", ">", "\"",
		"·", "$", "&", "/", "(", ")", "=", "'", "|", "@", "#", "~", "½", "¬",
		"{", "[", "]", "}", "_", "€", "`", "*", "^", "+", "’", "“", "”", "«",
		"»", "—",
	}
}

// Only returns a delimiter set holding just marks.
func Only(marks ...string) Delimiters {
	return Delimiters(marks)
}

// longestFirst returns the non-empty delimiters ordered by byte length,
// longest first, so "..." matches before ".".
func (d Delimiters) longestFirst() []string {
	out := make([]string, 0, len(d))

	for _, m := range d {
		if m != "" {
			out = append(out, m)
		}
	}

	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	return slices.Compact(out)
}

// Contains reports whether tok is one of the delimiters.
func (d Delimiters) Contains(tok string) bool {
	return slices.Contains(d, tok)
}

// Segment splits text on whitespace and then cuts every delimiter occurrence
// out as its own token.
//
//	Segment("¿Dónde está?", DefaultDelimiters()) // ["¿", "Dónde", "está", "?"]
func Segment(text string, delims Delimiters) []string {
	marks := delims.longestFirst()

	var tokens []string

	for _, field := range strings.FieldsFunc(text, unicode.IsSpace) {
		tokens = appendSplit(tokens, field, marks)
	}

	return tokens
}

func appendSplit(tokens []string, field string, marks []string) []string {
	start := 0

	for i := 0; i < len(field); {
		mark := matchAt(field[i:], marks)
		if mark == "" {
			_, size := utf8.DecodeRuneInString(field[i:])
			i += size

			continue
		}

		if start < i {
			tokens = append(tokens, field[start:i])
		}

		tokens = append(tokens, mark)
		i += len(mark)
		start = i
	}

	if start < len(field) {
		tokens = append(tokens, field[start:])
	}

	return tokens
}

func matchAt(s string, marks []string) string {
	for _, m := range marks {
		if strings.HasPrefix(s, m) {
			return m
		}
	}

	return ""
}
