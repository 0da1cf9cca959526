package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// DefaultFallbackTag labels words missing from a [Lexicon].
const DefaultFallbackTag = "X"

// Lexicon tags words from a fixed word→tag table. It is meant for offline
// use and tests; it knows nothing about context.
type Lexicon struct {
	words    map[string]string
	fallback string
}

// NewLexicon returns a lexicon tagger over words. An empty fallback means
// [DefaultFallbackTag].
func NewLexicon(words map[string]string, fallback string) *Lexicon {
	if fallback == "" {
		fallback = DefaultFallbackTag
	}

	copied := make(map[string]string, len(words))
	maps.Copy(copied, words)

	return &Lexicon{words: copied, fallback: fallback}
}

// LoadLexicon reads a JSONC object mapping words to tags.
//
//	{
//	  // determiners
//	  "el": "DET",
//	  "perro": "NOUN",
//	}
func LoadLexicon(path, fallback string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLexiconRead, path, err)
	}

	words, err := parseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLexiconParse, path, err)
	}

	return NewLexicon(words, fallback), nil
}

func parseLexicon(data []byte) (map[string]string, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var words map[string]string

	unmarshalErr := json.Unmarshal(standardized, &words)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return words, nil
}

// Tokenize segments text with [Segment].
func (*Lexicon) Tokenize(_ context.Context, text string, delims Delimiters) ([]string, error) {
	return Segment(text, delims), nil
}

// Tag labels each token from [Segment]: delimiters as [PunctTag], then an
// exact lookup, then a lower-cased lookup, then the fallback tag.
func (l *Lexicon) Tag(_ context.Context, text string, delims Delimiters) ([]string, error) {
	tokens := Segment(text, delims)
	tags := make([]string, len(tokens))

	for i, tok := range tokens {
		tags[i] = l.tagOf(tok, delims)
	}

	return tags, nil
}

// Analyze segments text once and tags the resulting tokens.
func (l *Lexicon) Analyze(_ context.Context, text string, delims Delimiters) (tokens, tags []string, err error) {
	tokens = Segment(text, delims)
	tags = make([]string, len(tokens))

	for i, tok := range tokens {
		tags[i] = l.tagOf(tok, delims)
	}

	return tokens, tags, nil
}

func (l *Lexicon) tagOf(tok string, delims Delimiters) string {
	if delims.Contains(tok) {
		return PunctTag
	}

	if tag, ok := l.words[tok]; ok {
		return tag
	}

	if tag, ok := l.words[strings.ToLower(tok)]; ok {
		return tag
	}

	return l.fallback
}
