package correction_test

import (
	"context"
	"errors"
	"strings"

	"github.com/calvinalkan/espacy/internal/tagger"
	"github.com/calvinalkan/espacy/pkg/postable"
)

// fakeTagger splits on spaces and tags from a fixed table.
type fakeTagger struct {
	tags        map[string]string
	err         error
	calls       int
	dropLastTag bool
}

func (f *fakeTagger) Tokenize(_ context.Context, text string, _ tagger.Delimiters) ([]string, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return strings.Fields(text), nil
}

func (f *fakeTagger) Tag(_ context.Context, text string, _ tagger.Delimiters) ([]string, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	fields := strings.Fields(text)
	tags := make([]string, len(fields))

	for i, w := range fields {
		tags[i] = f.tags[w]
	}

	if f.dropLastTag && len(tags) > 0 {
		tags = tags[:len(tags)-1]
	}

	return tags, nil
}

// fakeAnalyzer answers through a single Analyze call.
type fakeAnalyzer struct {
	fakeTagger

	analyzeCalls int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string, _ tagger.Delimiters) ([]string, []string, error) {
	f.analyzeCalls++

	fields := strings.Fields(text)
	tags := make([]string, len(fields))

	for i, w := range fields {
		tags[i] = f.tags[w]
	}

	return fields, tags, nil
}

type fakeLoader struct {
	cache *postable.Cache
	err   error
	loads int
}

func (f *fakeLoader) Load() (*postable.Cache, error) {
	f.loads++

	if f.err != nil {
		return nil, f.err
	}

	return f.cache, nil
}

var errTaggerDown = errors.New("tagger down")
