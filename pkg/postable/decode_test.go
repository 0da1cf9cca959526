package postable_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/espacy/pkg/postable"
)

const testHeader = `+-----+-----+-----+-----+
| word | contextPattern | correctedTag | exampleContexts |
+-----+-----+-----+-----+`

func decodeText(text string) *postable.Cache {
	return postable.Decode(strings.Split(text, "\n"))
}

func Test_Decode_Returns_Empty_Cache_When_Fewer_Than_Three_Lines(t *testing.T) {
	t.Parallel()

	for _, lines := range [][]string{nil, {"+--+"}, {"+--+", "| word |"}} {
		c := postable.Decode(lines)
		if got := len(c.Words()); got != 0 {
			t.Errorf("Decode(%q) has %d words, want 0", lines, got)
		}
	}
}

func Test_Decode_Skips_Header_When_Header_Looks_Like_Data(t *testing.T) {
	t.Parallel()

	c := postable.Decode([]string{
		"| a | A | X | first |",
		"| b | B | Y | second |",
		"| c | C | Z | third |",
		"| d | D | W | fourth |",
	})

	want := []postable.Entry{{Word: "d", Pattern: "D", Tag: "W", Example: "fourth"}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Inherits_Leading_Cells_When_Row_Is_Forward_Filled(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |
|     |     | PDT | the cat |`)

	want := []postable.Entry{
		{Word: "the", Pattern: "DET", Tag: "DT", Example: "the dog"},
		{Word: "the", Pattern: "DET", Tag: "PDT", Example: "the cat"},
	}

	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Does_Not_Inherit_Trailing_Cells_When_Leading_Cell_Present(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |
| a   |     | DT |  |`)

	want := []postable.Entry{
		{Word: "the", Pattern: "DET", Tag: "DT", Example: "the dog"},
		{Word: "a", Pattern: "", Tag: "DT", Example: ""},
	}

	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Treats_Missing_Columns_As_Empty_When_Row_Is_Short(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |
|     |     | PDT |`)

	want := []postable.Entry{
		{Word: "the", Pattern: "DET", Tag: "DT", Example: "the dog"},
		{Word: "the", Pattern: "DET", Tag: "PDT", Example: ""},
	}

	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Drops_Row_When_Word_Cannot_Inherit(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
|     | DET | DT | orphan |
| el  | DET | DET | el perro |`)

	want := []postable.Entry{{Word: "el", Pattern: "DET", Tag: "DET", Example: "el perro"}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Keeps_Row_As_Previous_When_Tag_Empty(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| la | DET NOUN |  |  |
|    |          | PRON | la vi |`)

	want := []postable.Entry{{Word: "la", Pattern: "DET NOUN", Tag: "PRON", Example: "la vi"}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Ignores_Blank_And_Decoration_Lines_When_Present(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |

+-----+-----+
|     |     | PDT | the cat |
`)

	if got, want := c.Len(), 2; got != want {
		t.Fatalf("Len()=%d, want=%d", got, want)
	}

	if got := c.Entries()[1].Word; got != "the" {
		t.Errorf("second row word=%q, want %q", got, "the")
	}
}

func Test_Decode_Merges_Examples_When_Rows_Share_Word_Pattern_And_Tag(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |
|     |     |    | the cat |`)

	pm, _ := c.Lookup("the")
	cs, _ := pm.Lookup("DET")

	if diff := cmp.Diff([]string{"the dog", "the cat"}, cs.Examples("DT")); diff != "" {
		t.Errorf("Examples mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Keeps_Pipes_In_Example_When_Row_Has_Extra_Cells(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| x | NOUN | PROPN | a | b |`)

	want := []postable.Entry{{Word: "x", Pattern: "NOUN", Tag: "PROPN", Example: "a | b"}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func Test_Decode_Skips_Row_When_Every_Cell_Is_Blank(t *testing.T) {
	t.Parallel()

	c := decodeText(testHeader + `
| the | DET | DT | the dog |
|
| | | |
|     |     | PDT | the cat |`)

	pm, ok := c.Lookup("the")
	if !ok {
		t.Fatal("word not found")
	}

	if diff := cmp.Diff([]string{"DET"}, pm.Patterns()); diff != "" {
		t.Errorf("Patterns mismatch (-want +got):\n%s", diff)
	}

	want := []postable.Entry{
		{Word: "the", Pattern: "DET", Tag: "DT", Example: "the dog"},
		{Word: "the", Pattern: "DET", Tag: "PDT", Example: "the cat"},
	}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.Len(), 2; got != want {
		t.Errorf("Len()=%d, want=%d", got, want)
	}
}
