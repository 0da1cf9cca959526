// Package tagger talks to the part-of-speech tagging service.
//
// Tokenization, parsing and tagging happen outside this module. A [Tagger]
// returns the surface tokens of a text and, in a separate call, one POS label
// per token, index-aligned with the tokens for the same input.
package tagger

import (
	"context"
	"errors"
	"fmt"
)

// Tagger tokenizes and tags text. Both calls must split on the same
// delimiters so their results line up.
type Tagger interface {
	Tokenize(ctx context.Context, text string, delims Delimiters) ([]string, error)
	Tag(ctx context.Context, text string, delims Delimiters) ([]string, error)
}

// Analyzer is implemented by taggers that produce tokens and tags in a
// single pass, so the two always come from the same run.
type Analyzer interface {
	Analyze(ctx context.Context, text string, delims Delimiters) (tokens, tags []string, err error)
}

// Analyze returns index-aligned tokens and tags for text. An [Analyzer] is
// asked once; any other tagger is asked to tokenize and then to tag, and the
// two results are checked against each other.
func Analyze(ctx context.Context, tg Tagger, text string, delims Delimiters) (tokens, tags []string, err error) {
	if a, ok := tg.(Analyzer); ok {
		return a.Analyze(ctx, text, delims)
	}

	tokens, err = tg.Tokenize(ctx, text, delims)
	if err != nil {
		return nil, nil, err
	}

	tags, err = tg.Tag(ctx, text, delims)
	if err != nil {
		return nil, nil, err
	}

	if len(tokens) != len(tags) {
		return nil, nil, fmt.Errorf("%w: %d tokens, %d tags", ErrMisaligned, len(tokens), len(tags))
	}

	return tokens, tags, nil
}

// Errors returned by taggers.
var (
	ErrMisaligned    = errors.New("tokens and tags are not aligned")
	ErrCommandEmpty  = errors.New("tagger command is empty")
	ErrCommandFailed = errors.New("tagger command failed")
	ErrBadResponse   = errors.New("invalid tagger response")
	ErrLexiconRead   = errors.New("cannot read lexicon")
	ErrLexiconParse  = errors.New("invalid lexicon")
)

// PunctTag labels delimiter tokens in the [Lexicon] tagger.
const PunctTag = "PUNCT"
