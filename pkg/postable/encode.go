package postable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnNames are the header cells of the table.
var ColumnNames = [numColumns]string{"word", "contextPattern", "correctedTag", "exampleContexts"}

// tabWidth is how wide a tab inside an example counts for the margin.
const tabWidth = 4

// Encode renders the cache as table lines: decoration, header, decoration,
// then one row per distinct quadruple in [Cache.Entries] order.
//
// Every cell is padded to the same margin. A row's leading cells that repeat
// the row above are written blank, exactly the cells [Decode] fills back in.
func Encode(c *Cache) []string {
	margin := Margin(c)

	header := renderRow(ColumnNames[:], margin)
	decoration := Decoration(header)

	lines := []string{decoration, header, decoration}

	var prev *[numColumns]string

	for _, row := range distinctRows(c) {
		lines = append(lines, renderRow(compress(row, prev), margin))
		prev = &row
	}

	return lines
}

// Margin returns the cell width used by [Encode]: one more than the widest
// example, where every tab adds another [tabWidth]. The minimum is 1.
func Margin(c *Cache) int {
	margin := 1

	for _, e := range c.Entries() {
		w := runewidth.StringWidth(e.Example) + 1 + strings.Count(e.Example, "\t")*tabWidth
		if w > margin {
			margin = w
		}
	}

	return margin
}

// Decoration turns a rendered row into a border line: pipes become '+' and
// every other character becomes '-'.
func Decoration(row string) string {
	var b strings.Builder

	for _, r := range row {
		if r == '|' {
			b.WriteByte('+')
			continue
		}

		b.WriteString(strings.Repeat("-", max(runewidth.RuneWidth(r), 1)))
	}

	return b.String()
}

func distinctRows(c *Cache) [][numColumns]string {
	seen := make(map[Entry]struct{})

	var rows [][numColumns]string

	for _, e := range c.Entries() {
		if _, dup := seen[e]; dup {
			continue
		}

		seen[e] = struct{}{}
		rows = append(rows, [numColumns]string{e.Word, e.Pattern, e.Tag, e.Example})
	}

	return rows
}

// compress blanks the leading cells of row that repeat prev. A cell is only
// blanked when the cell after it is either blanked too or non-empty;
// otherwise decoding would pull the next cell down from prev as well.
func compress(row [numColumns]string, prev *[numColumns]string) []string {
	out := row[:]
	if prev == nil {
		return out
	}

	out = append([]string(nil), row[:]...)

	blank := 0
	for blank < numColumns && row[blank] != "" && row[blank] == prev[blank] {
		blank++
	}

	for blank > 0 && blank < numColumns && row[blank] == "" {
		blank--
	}

	for col := range blank {
		out[col] = ""
	}

	return out
}

// renderRow lays cells out as "| a    | b    |", each padded to margin with
// at least one space after the text.
func renderRow(cells []string, margin int) string {
	var b strings.Builder

	b.WriteString("| ")

	for _, cell := range cells {
		pad := max(margin-runewidth.StringWidth(cell), 1)

		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString("| ")
	}

	return strings.TrimSuffix(b.String(), " ")
}
