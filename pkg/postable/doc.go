// Package postable stores part-of-speech corrections as a human-readable,
// pipe-delimited table and holds them in memory as an ordered, nested cache.
//
// The table looks like this:
//
//	+----------+--------------+--------------+-----------------+
//	| word     | contextPattern | correctedTag | exampleContexts |
//	+----------+--------------+--------------+-----------------+
//	| the      | DET          | DT           | the dog         |
//	|          |              | PDT          | the cat         |
//
// The first three lines are a header region and are never parsed. Data rows
// may leave their leading cells blank, meaning "same as the row above"
// (forward-fill). Only the leftmost contiguous run of blank cells is filled;
// trailing cells are never inherited.
//
// In memory every level of the cache keeps first-insertion order, so the
// first corrected tag recorded for a (word, pattern) pair is the one that
// wins during resolution and the one that is written first on encode.
package postable
