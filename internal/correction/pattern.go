package correction

import "strings"

// Neighbors returns the tags around the first token equal to word. Either
// side is empty when that neighbor does not exist, and both are empty when
// word is not among the tokens. Later occurrences of word are ignored.
func Neighbors(word string, tokens, tags []string) (previous, next string) {
	for i, tok := range tokens {
		if tok != word {
			continue
		}

		if i > 0 {
			previous = tagAt(tags, i-1)
		}

		if i+1 < len(tokens) {
			next = tagAt(tags, i+1)
		}

		return previous, next
	}

	return "", ""
}

func tagAt(tags []string, i int) string {
	if i < 0 || i >= len(tags) {
		return ""
	}

	return tags[i]
}

// Pack joins previous, target and next with single spaces, leaving out an
// absent neighbor together with its separator.
//
//	Pack("DET", "NOUN", "ADJ") // "DET NOUN ADJ"
//	Pack("", "NOUN", "ADJ")    // "NOUN ADJ"
func Pack(previous, target, next string) string {
	var b strings.Builder

	if previous != "" {
		b.WriteString(previous)
		b.WriteByte(' ')
	}

	b.WriteString(target)

	if next != "" {
		b.WriteByte(' ')
		b.WriteString(next)
	}

	return b.String()
}

// ContextPattern builds the cache key for word inside a tagged phrase, using
// targetTag for the word itself.
func ContextPattern(word, targetTag string, tokens, tags []string) string {
	previous, next := Neighbors(word, tokens, tags)
	return Pack(previous, targetTag, next)
}

// keyVariants lists the spellings a stored pattern key may have: as built,
// tab-joined, and with the spaces removed.
func keyVariants(pattern string) [3]string {
	return [3]string{
		pattern,
		strings.ReplaceAll(pattern, " ", "\t"),
		strings.ReplaceAll(pattern, " ", ""),
	}
}
