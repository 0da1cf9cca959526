package postable_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/espacy/pkg/postable"
)

func Test_Cache_First_Returns_First_Inserted_Tag_When_Set_Is_Ambiguous(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("the", "DET", "DT", "the dog")
	c.Add("the", "DET", "PDT", "all the dogs")
	c.Add("the", "DET", "WDT", "which the")

	pm, ok := c.Lookup("the")
	if !ok {
		t.Fatal("word not found")
	}

	cs, ok := pm.Lookup("DET")
	if !ok {
		t.Fatal("pattern not found")
	}

	for range 10 {
		got, ok := cs.First()
		if !ok || got != "DT" {
			t.Fatalf("First()=%q,%v want %q", got, ok, "DT")
		}
	}

	if diff := cmp.Diff([]string{"DT", "PDT", "WDT"}, cs.Tags()); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func Test_Cache_Add_Appends_Examples_When_Tag_Repeats(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("casa", "DET NOUN ADJ", "ADJ", "de Casa Vieja")
	c.Add("casa", "DET NOUN ADJ", "ADJ", "la casa blanca")
	c.Add("casa", "DET NOUN ADJ", "ADJ", "la casa blanca")

	pm, _ := c.Lookup("casa")
	cs, _ := pm.Lookup("DET NOUN ADJ")

	want := []string{"de Casa Vieja", "la casa blanca", "la casa blanca"}
	if diff := cmp.Diff(want, cs.Examples("ADJ")); diff != "" {
		t.Errorf("Examples mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.Len(), 3; got != want {
		t.Errorf("Len()=%d, want=%d", got, want)
	}
}

func Test_Cache_Add_Stores_Canonical_Pattern_When_Whitespace_Varies(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("casa", "  DET\tNOUN   ADJ ", "ADJ", "")

	pm, _ := c.Lookup("casa")
	if diff := cmp.Diff([]string{"DET NOUN ADJ"}, pm.Patterns()); diff != "" {
		t.Errorf("Patterns mismatch (-want +got):\n%s", diff)
	}
}

func Test_Cache_Add_Creates_Levels_Without_Correction_When_Tag_Empty(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("el", "DET", "", "el perro")

	if !c.Has("el") {
		t.Fatal("word level should exist")
	}

	pm, _ := c.Lookup("el")
	cs, ok := pm.Lookup("DET")

	if !ok {
		t.Fatal("pattern level should exist")
	}

	if tag, ok := cs.First(); ok {
		t.Errorf("First()=%q, want none", tag)
	}

	if got := c.Len(); got != 0 {
		t.Errorf("Len()=%d, want=0", got)
	}
}

func Test_Cache_Entries_Keeps_Insertion_Order_When_Enumerating(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("b", "X", "T1", "e1")
	c.Add("a", "Y", "T2", "e2")
	c.Add("b", "Z", "T3", "e3")
	c.Add("b", "X", "T4", "e4")

	want := []postable.Entry{
		{Word: "b", Pattern: "X", Tag: "T1", Example: "e1"},
		{Word: "b", Pattern: "X", Tag: "T4", Example: "e4"},
		{Word: "b", Pattern: "Z", Tag: "T3", Example: "e3"},
		{Word: "a", Pattern: "Y", Tag: "T2", Example: "e2"},
	}

	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"b", "a"}, c.Words()); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
}

func Test_Cache_Remove_Prunes_Empty_Levels_When_Last_Tag_Removed(t *testing.T) {
	t.Parallel()

	c := postable.NewCache()
	c.Add("the", "DET", "DT", "the dog")
	c.Add("the", "DET NOUN", "PDT", "the cat")

	if !c.Remove("the", "DET", "DT") {
		t.Fatal("Remove should report removal")
	}

	pm, ok := c.Lookup("the")
	if !ok {
		t.Fatal("word should remain while it has patterns")
	}

	if diff := cmp.Diff([]string{"DET NOUN"}, pm.Patterns()); diff != "" {
		t.Errorf("Patterns mismatch (-want +got):\n%s", diff)
	}

	if !c.Remove("the", "DET  NOUN", "") {
		t.Fatal("Remove of pattern should report removal")
	}

	if c.Has("the") {
		t.Error("word should be pruned once empty")
	}

	if c.Remove("the", "", "") {
		t.Error("Remove of missing word should report false")
	}
}

func Test_CanonicalPattern_Collapses_Whitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"DET NOUN", "DET NOUN"},
		{"  DET\tNOUN  ADJ ", "DET NOUN ADJ"},
		{"DET\n\nNOUN", "DET NOUN"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := postable.CanonicalPattern(tt.in); got != tt.want {
			t.Errorf("CanonicalPattern(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
