// Package correction fixes part-of-speech tags using the curated correction
// cache.
//
// A word's context pattern is its own tag between the tags of its immediate
// neighbors in the phrase ("DET NOUN ADJ"). When the cache records a
// correction for the word under that pattern (or, failing that, under the
// bare tag), the first corrected tag wins; every miss quietly keeps the
// original tag.
package correction

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/espacy/internal/tagger"
	"github.com/calvinalkan/espacy/pkg/postable"
)

// Loader provides the correction cache.
type Loader interface {
	Load() (*postable.Cache, error)
}

// Corrector resolves tags against a cache that is loaded on first use.
// It is not safe for concurrent use until [Corrector.Cache] has returned once.
type Corrector struct {
	tagger tagger.Tagger
	loader Loader
	delims tagger.Delimiters
	log    *zap.Logger

	cache *postable.Cache
}

// Option configures a [Corrector].
type Option func(*Corrector)

// WithDelimiters replaces the delimiter set passed to the tagger.
func WithDelimiters(d tagger.Delimiters) Option {
	return func(c *Corrector) {
		if len(d) > 0 {
			c.delims = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Corrector) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a corrector. Panics if tg or loader is nil.
func New(tg tagger.Tagger, loader Loader, opts ...Option) *Corrector {
	if tg == nil {
		panic("tagger is nil")
	}

	if loader == nil {
		panic("loader is nil")
	}

	c := &Corrector{
		tagger: tg,
		loader: loader,
		delims: tagger.DefaultDelimiters(),
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Cache returns the correction cache, loading it on the first call.
func (c *Corrector) Cache() (*postable.Cache, error) {
	if c.cache != nil {
		return c.cache, nil
	}

	cache, err := c.loader.Load()
	if err != nil {
		return nil, err
	}

	c.cache = cache

	return cache, nil
}

// CorrectTag returns the corrected tag for word inside phrase, or
// originalTag when the cache has no usable correction. The phrase is only
// sent to the tagger when word is in the cache. Tagger failures also keep
// originalTag; only a failure to load the cache is returned.
func (c *Corrector) CorrectTag(ctx context.Context, word, originalTag, phrase string) (string, error) {
	cache, err := c.Cache()
	if err != nil {
		return "", err
	}

	if !cache.Has(word) {
		return originalTag, nil
	}

	tokens, tags, err := c.analyze(ctx, phrase)
	if err != nil {
		c.log.Warn("tagger failed, keeping original tag",
			zap.String("word", word),
			zap.String("tag", originalTag),
			zap.Error(err))

		return originalTag, nil
	}

	pattern := ContextPattern(word, originalTag, tokens, tags)

	corrected, ok := LookupContext(cache, word, pattern, originalTag)
	if !ok {
		c.log.Debug("no correction",
			zap.String("word", word),
			zap.String("pattern", pattern))

		return originalTag, nil
	}

	c.log.Debug("tag corrected",
		zap.String("word", word),
		zap.String("pattern", pattern),
		zap.String("from", originalTag),
		zap.String("to", corrected))

	return corrected, nil
}

// Pattern returns the context pattern of word inside phrase.
func (c *Corrector) Pattern(ctx context.Context, word, targetTag, phrase string) (string, error) {
	tokens, tags, err := c.analyze(ctx, phrase)
	if err != nil {
		return "", err
	}

	return ContextPattern(word, targetTag, tokens, tags), nil
}

// AnalyzePattern tags the whole text, splitting only on '.', and joins the
// tags with single spaces.
func (c *Corrector) AnalyzePattern(ctx context.Context, text string) (string, error) {
	return AnalyzePattern(ctx, c.tagger, text)
}

// AnalyzePattern tags text with tg, splitting only on '.', and joins the
// tags with single spaces.
func AnalyzePattern(ctx context.Context, tg tagger.Tagger, text string) (string, error) {
	tags, err := tg.Tag(ctx, text, tagger.Only("."))
	if err != nil {
		return "", err
	}

	return strings.Join(tags, " "), nil
}

// Surroundings returns the first occurrence of word in the cleaned text
// together with its neighbors. See [Surroundings].
func (c *Corrector) Surroundings(ctx context.Context, text, word string) ([3]Token, error) {
	return surroundings(ctx, c.tagger, text, word, c.delims)
}

func (c *Corrector) analyze(ctx context.Context, phrase string) (tokens, tags []string, err error) {
	return tagger.Analyze(ctx, c.tagger, phrase, c.delims)
}
