package correction

import "github.com/calvinalkan/espacy/pkg/postable"

// Lookup finds the correction for word under pattern. The pattern is tried
// as built, tab-joined and concatenated; the first spelling present wins and
// its first-inserted corrected tag is returned.
//
// found reports whether any spelling of pattern is recorded for word. A
// found pattern whose first corrected tag is missing or empty yields an
// empty tag: the entry exists but holds no usable correction.
func Lookup(cache *postable.Cache, word, pattern string) (tag string, found bool) {
	patterns, ok := cache.Lookup(word)
	if !ok {
		return "", false
	}

	for _, key := range keyVariants(pattern) {
		set, ok := patterns.Lookup(key)
		if !ok {
			continue
		}

		tag, _ = set.First()

		return tag, true
	}

	return "", false
}

// LookupContext finds the correction for word under pattern and, when no
// spelling of pattern is recorded at all, under the bare target tag. A
// recorded pattern without a usable correction does not fall back. ok is
// true only when a non-empty corrected tag was found.
func LookupContext(cache *postable.Cache, word, pattern, targetTag string) (tag string, ok bool) {
	tag, found := Lookup(cache, word, pattern)
	if found || pattern == targetTag {
		return tag, tag != ""
	}

	tag, _ = Lookup(cache, word, targetTag)

	return tag, tag != ""
}

// Resolve returns the corrected tag for word given the phrase's tokens and
// tags, or originalTag when the cache has nothing usable.
//
// An entry recorded under the bare tag (a context-free correction) applies
// in every context that has no entry of its own for the word.
func Resolve(cache *postable.Cache, word, originalTag string, tokens, tags []string) string {
	if !cache.Has(word) {
		return originalTag
	}

	pattern := ContextPattern(word, originalTag, tokens, tags)

	tag, ok := LookupContext(cache, word, pattern, originalTag)
	if !ok {
		return originalTag
	}

	return tag
}
