package correction

import (
	"context"

	"github.com/calvinalkan/espacy/internal/tagger"
)

// Token is a surface token with its POS tag.
type Token struct {
	Text string
	Tag  string
}

// Surroundings cleans text with [CleanText], tags it, and returns the
// previous token, the first token equal to word, and the next token. Entries
// past either edge are zero. When word does not occur all three are zero.
func Surroundings(ctx context.Context, tg tagger.Tagger, text, word string) ([3]Token, error) {
	return surroundings(ctx, tg, text, word, tagger.DefaultDelimiters())
}

func surroundings(ctx context.Context, tg tagger.Tagger, text, word string, delims tagger.Delimiters) ([3]Token, error) {
	var out [3]Token

	tokens, tags, err := tagger.Analyze(ctx, tg, CleanText(text), delims)
	if err != nil {
		return out, err
	}

	for i, tok := range tokens {
		if tok != word {
			continue
		}

		out[1] = Token{Text: tok, Tag: tagAt(tags, i)}

		if i > 0 {
			out[0] = Token{Text: tokens[i-1], Tag: tagAt(tags, i-1)}
		}

		if i+1 < len(tokens) {
			out[2] = Token{Text: tokens[i+1], Tag: tagAt(tags, i+1)}
		}

		break
	}

	return out, nil
}
