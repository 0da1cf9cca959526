package correction

import "strings"

// SentenceOf returns the sentence of text that contains word, splitting on
// '.'. When word itself contains a dot (an abbreviation such as "Sr."), the
// sentence holding the dotless word is joined with the one after it, since
// the abbreviation's dot split them. ok is false when nothing matches.
func SentenceOf(text, word string) (sentence string, ok bool) {
	sentences := strings.Split(text, ".")

	if !strings.Contains(word, ".") {
		for _, s := range sentences {
			if strings.Contains(s, word) {
				return s, true
			}
		}

		return "", false
	}

	bare := strings.ReplaceAll(word, ".", "")

	for i, s := range sentences {
		if strings.Contains(s, bare) && i+1 < len(sentences) {
			return s + "." + sentences[i+1], true
		}
	}

	return "", false
}
