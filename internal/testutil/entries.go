package testutil

import (
	"strings"

	"github.com/calvinalkan/espacy/pkg/postable"
)

// cellRunes are the characters a generated cell is drawn from. Pipes and
// tabs are left out; they do not survive a table round trip.
var cellRunes = []rune("abcdeñéü…,.+-ABCDEFGHIJ")

var tagPool = []string{"DET", "NOUN", "ADJ", "VERB", "ADP", "PRON", "PROPN", "PUNCT", "X"}

// NextCell returns a non-empty cell of up to maxWords words joined by single
// spaces.
func (s *ByteStream) NextCell(maxWords int) string {
	words := make([]string, 1+s.NextInt(max(maxWords, 1)))

	for i := range words {
		var b strings.Builder

		for range 1 + s.NextInt(6) {
			b.WriteRune(Pick(s, cellRunes))
		}

		words[i] = b.String()
	}

	return strings.Join(words, " ")
}

// NextPattern returns one to three tags joined by single spaces.
func (s *ByteStream) NextPattern() string {
	tags := make([]string, 1+s.NextInt(3))
	for i := range tags {
		tags[i] = Pick(s, tagPool)
	}

	return strings.Join(tags, " ")
}

// Entries draws up to maxEntries distinct cache entries from the stream.
// Words, patterns and tags are drawn from small pools so that rows share
// leading cells. Examples may be empty.
func (s *ByteStream) Entries(maxEntries int) []postable.Entry {
	words := []string{s.NextCell(1), s.NextCell(2), s.NextCell(1)}

	seen := make(map[postable.Entry]bool)

	var out []postable.Entry

	for range s.NextInt(maxEntries + 1) {
		e := postable.Entry{
			Word:    Pick(s, words),
			Pattern: s.NextPattern(),
			Tag:     Pick(s, tagPool),
		}

		if s.NextBool() {
			e.Example = s.NextCell(4)
		}

		if seen[e] {
			continue
		}

		seen[e] = true
		out = append(out, e)
	}

	return out
}
