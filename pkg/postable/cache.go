package postable

import (
	"slices"
	"strings"
)

// ordered is a string-keyed map that remembers first-insertion order.
type ordered[V any] struct {
	keys []string
	vals map[string]V
}

func (o *ordered[V]) get(key string) (V, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// getOrCreate returns the value at key, inserting mk() at the end when absent.
func (o *ordered[V]) getOrCreate(key string, mk func() V) V {
	if v, ok := o.vals[key]; ok {
		return v
	}

	if o.vals == nil {
		o.vals = make(map[string]V)
	}

	v := mk()
	o.vals[key] = v
	o.keys = append(o.keys, key)

	return v
}

func (o *ordered[V]) remove(key string) bool {
	if _, ok := o.vals[key]; !ok {
		return false
	}

	delete(o.vals, key)

	for i, k := range o.keys {
		if k == key {
			o.keys = slices.Delete(o.keys, i, i+1)
			break
		}
	}

	return true
}

func (o *ordered[V]) len() int { return len(o.keys) }

// Entry is one (word, pattern, tag, example) quadruple of the cache.
type Entry struct {
	Word    string
	Pattern string
	Tag     string
	Example string
}

// Cache maps a word (exact, case-sensitive) to the patterns recorded for it.
// The zero value is an empty cache ready to use.
type Cache struct {
	words ordered[*PatternMap]
}

// PatternMap maps a context pattern to the corrections recorded under it.
type PatternMap struct {
	patterns ordered[*CorrectionSet]
}

// CorrectionSet holds the corrected tags for one (word, pattern) pair, each
// with the example phrases that justified it. Tags keep insertion order.
type CorrectionSet struct {
	tags ordered[*[]string]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// CanonicalPattern collapses every whitespace run in pattern into a single
// space and trims the ends.
func CanonicalPattern(pattern string) string {
	return strings.Join(strings.Fields(pattern), " ")
}

// Add records example under (word, pattern, tag). The pattern is stored in
// its canonical form. Missing levels are created; an empty tag still creates
// the word and pattern levels but records no correction.
func (c *Cache) Add(word, pattern, tag, example string) {
	pm := c.words.getOrCreate(word, func() *PatternMap { return &PatternMap{} })
	cs := pm.patterns.getOrCreate(CanonicalPattern(pattern), func() *CorrectionSet { return &CorrectionSet{} })

	if tag == "" {
		return
	}

	examples := cs.tags.getOrCreate(tag, func() *[]string { return new([]string) })
	*examples = append(*examples, example)
}

// Remove deletes entries from the cache. With an empty pattern the whole word
// goes; with an empty tag the whole pattern goes. Levels left empty by the
// removal are pruned. Reports whether anything was removed.
func (c *Cache) Remove(word, pattern, tag string) bool {
	if pattern == "" {
		return c.words.remove(word)
	}

	pm, ok := c.words.get(word)
	if !ok {
		return false
	}

	pattern = CanonicalPattern(pattern)

	var removed bool

	if tag == "" {
		removed = pm.patterns.remove(pattern)
	} else if cs, ok := pm.patterns.get(pattern); ok {
		removed = cs.tags.remove(tag)
		if removed && cs.tags.len() == 0 {
			pm.patterns.remove(pattern)
		}
	}

	if removed && pm.patterns.len() == 0 {
		c.words.remove(word)
	}

	return removed
}

// Lookup returns the patterns recorded for word.
func (c *Cache) Lookup(word string) (*PatternMap, bool) {
	return c.words.get(word)
}

// Has reports whether word is a key of the cache.
func (c *Cache) Has(word string) bool {
	_, ok := c.words.get(word)
	return ok
}

// Words returns the words in insertion order.
func (c *Cache) Words() []string {
	return append([]string(nil), c.words.keys...)
}

// Len returns the number of quadruples in the cache, duplicates included.
func (c *Cache) Len() int {
	n := 0

	for _, w := range c.words.keys {
		pm := c.words.vals[w]
		for _, p := range pm.patterns.keys {
			cs := pm.patterns.vals[p]
			for _, t := range cs.tags.keys {
				n += len(*cs.tags.vals[t])
			}
		}
	}

	return n
}

// Entries enumerates every quadruple in word, pattern, tag, example order.
func (c *Cache) Entries() []Entry {
	var out []Entry

	for _, w := range c.words.keys {
		out = append(out, c.words.vals[w].entries(w)...)
	}

	return out
}

// WordEntries enumerates the quadruples recorded for a single word.
func (c *Cache) WordEntries(word string) []Entry {
	pm, ok := c.words.get(word)
	if !ok {
		return nil
	}

	return pm.entries(word)
}

// Lookup returns the corrections recorded under pattern.
func (pm *PatternMap) Lookup(pattern string) (*CorrectionSet, bool) {
	return pm.patterns.get(pattern)
}

// Patterns returns the pattern keys in insertion order.
func (pm *PatternMap) Patterns() []string {
	return append([]string(nil), pm.patterns.keys...)
}

func (pm *PatternMap) entries(word string) []Entry {
	var out []Entry

	for _, p := range pm.patterns.keys {
		cs := pm.patterns.vals[p]
		for _, t := range cs.tags.keys {
			for _, ex := range *cs.tags.vals[t] {
				out = append(out, Entry{Word: word, Pattern: p, Tag: t, Example: ex})
			}
		}
	}

	return out
}

// First returns the first-inserted corrected tag, if any.
func (cs *CorrectionSet) First() (string, bool) {
	if cs == nil || cs.tags.len() == 0 {
		return "", false
	}

	return cs.tags.keys[0], true
}

// Tags returns the corrected tags in insertion order.
func (cs *CorrectionSet) Tags() []string {
	return append([]string(nil), cs.tags.keys...)
}

// Examples returns the example phrases recorded for tag, in file order.
func (cs *CorrectionSet) Examples(tag string) []string {
	ex, ok := cs.tags.get(tag)
	if !ok {
		return nil
	}

	return append([]string(nil), (*ex)...)
}
