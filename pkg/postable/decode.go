package postable

import (
	"strings"
)

// HeaderLines is the number of lines before the first data row.
const HeaderLines = 3

// Column positions of a data row.
const (
	colWord = iota
	colPattern
	colTag
	colExample
	numColumns
)

// Decode parses table lines into a cache.
//
// The first [HeaderLines] lines are skipped unconditionally. Decode never
// rejects a row: missing trailing cells read as empty, blank leading cells
// inherit from the previous row, and a row whose word stays empty is dropped.
// Rows with no text in any cell are skipped and do not become the previous row.
// Rows with an empty corrected tag record no correction but still serve as
// the "previous row" for the rows below them.
func Decode(lines []string) *Cache {
	cache := NewCache()

	if len(lines) < HeaderLines {
		return cache
	}

	var prev [numColumns]string

	for _, line := range lines[HeaderLines:] {
		cells := splitRow(line)
		if allBlank(cells) {
			continue
		}

		row := inherit(cells, prev)
		if row[colWord] == "" {
			continue
		}

		cache.Add(row[colWord], row[colPattern], row[colTag], row[colExample])
		prev = row
	}

	return cache
}

// allBlank reports whether a row has no text at all. Such rows (a lone "|",
// or "| | | |") carry nothing to inherit into and are skipped like blank lines.
func allBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}

	return true
}

// inherit forward-fills the leftmost contiguous run of blank cells from prev.
// A cell is only considered when the row actually has that column.
func inherit(cells []string, prev [numColumns]string) [numColumns]string {
	var row [numColumns]string

	copy(row[:], cells)

	for col := range numColumns {
		if col >= len(cells) || row[col] != "" {
			break
		}

		row[col] = prev[col]
	}

	return row
}

// splitRow splits a data line into trimmed cells. The empty artifacts before
// the opening pipe and after the closing pipe are dropped. Cells past the
// last column are folded back into the example, which may contain pipes.
// Blank lines and decoration lines yield nil.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || isDecoration(line) {
		return nil
	}

	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	if len(cells) > numColumns {
		cells = append(cells[:colExample], strings.Join(cells[colExample:], "|"))
	}

	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	return cells
}

// isDecoration reports whether line consists only of '+' and '-'.
func isDecoration(line string) bool {
	return strings.Trim(line, "+-") == ""
}
