package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/espacy/internal/cli"
)

const messyTable = `+------+
| word | contextPattern | correctedTag | exampleContexts |
+------+
|the|DET   NOUN|DT|the dog|
|   |          |PDT|the cat|
| the | DET NOUN | DT | the dog |

| runs | VERB | VBZ | |
`

func Test_Rm_Removes_Word_When_Only_Word_Given(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	c.MustRun("add", "the", "DET", "DT", "--phrase", "the dog")
	c.MustRun("add", "runs", "VERB", "VBZ")

	out := c.MustRun("rm", "the")
	cli.AssertContains(t, out, "removed the")

	table := c.ReadCache()
	cli.AssertNotContains(t, table, "the dog")
	cli.AssertContains(t, table, "| runs ")
}

func Test_Rm_Removes_Single_Tag_When_Pattern_And_Tag_Given(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	c.MustRun("add", "the", "DET", "DT", "--phrase", "the dog")
	c.MustRun("add", "the", "DET", "PDT", "--phrase", "the cat")

	c.MustRun("rm", "the", "DET NOUN", "DT")

	if got, want := c.MustRun("correct", "the", "DET", "the", "dog"), "PDT"; got != want {
		t.Errorf("tag=%q, want=%q", got, want)
	}
}

func Test_Rm_Fails_When_Entry_Unknown(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	stderr := c.MustFail("rm", "nope")

	cli.AssertContains(t, stderr, "no such entry: nope")
}

func Test_Show_Prints_Only_Word_Rows_When_Word_Given(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	c.MustRun("add", "the", "DET", "DT", "--phrase", "the dog")
	c.MustRun("add", "runs", "VERB", "VBZ")

	all := c.MustRun("show")
	cli.AssertContains(t, all, "| the ")
	cli.AssertContains(t, all, "| runs ")

	one := c.MustRun("show", "the")
	cli.AssertContains(t, one, "| the ")
	cli.AssertContains(t, one, "the dog")
	cli.AssertNotContains(t, one, "runs")
}

func Test_Show_Fails_When_Word_Unknown(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	stderr := c.MustFail("show", "nope")

	cli.AssertContains(t, stderr, "no such entry: nope")
}

func Test_Init_Creates_Header_Only_Table(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	out := c.MustRun("init")

	cli.AssertContains(t, out, "created "+c.CachePath())

	lines := strings.Split(strings.TrimSpace(c.ReadCache()), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("lines=%d, want=%d\n%s", got, want, c.ReadCache())
	}

	cli.AssertContains(t, lines[1], "| word | contextPattern | correctedTag | exampleContexts |")
}

func Test_Init_Warns_When_Table_Exists(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("init")

	_, stderr, code := c.Run("init")
	if got, want := code, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "warning: table already exists")
}

func Test_Init_Uses_Cache_Override_When_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("--cache", "other/table.txt", "init")

	_, err := os.Stat(filepath.Join(c.Dir, "other", "table.txt"))
	if err != nil {
		t.Fatalf("override table not created: %v", err)
	}

	_, err = os.Stat(c.CachePath())
	if !os.IsNotExist(err) {
		t.Fatalf("default table should not exist, stat err=%v", err)
	}
}

func Test_Fmt_Normalizes_Table(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteCache(messyTable)

	printed := c.MustRun("fmt", "--print")
	table := c.ReadCache()

	if got, want := printed, strings.TrimSpace(table); got != want {
		t.Errorf("printed table differs from file\nprinted:\n%s\nfile:\n%s", got, want)
	}

	lines := strings.Split(strings.TrimSpace(table), "\n")

	// header block + DT, PDT, VBZ rows; the duplicate DT row is dropped
	if got, want := len(lines), 6; got != want {
		t.Fatalf("lines=%d, want=%d\n%s", got, want, table)
	}

	cli.AssertContains(t, lines[3], "| the ")
	cli.AssertContains(t, lines[3], "| DET NOUN ")
	cli.AssertContains(t, lines[4], "| PDT ")

	// word and pattern repeat the row above, so both cells are blank
	blankCell := "|" + strings.Repeat(" ", len("the dog")+2)
	if !strings.HasPrefix(lines[4], blankCell+blankCell+"|") {
		t.Errorf("row should start with two blank cells: %q", lines[4])
	}
	cli.AssertContains(t, lines[5], "| runs ")

	// fmt is idempotent
	c.MustRun("fmt")

	if got := c.ReadCache(); got != table {
		t.Errorf("second fmt changed the table\nbefore:\n%s\nafter:\n%s", table, got)
	}
}

func Test_Repl_Answers_Each_Line_When_Input_Piped(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)
	c.MustRun("add", "the", "DET", "DT", "--phrase", "the dog")

	input := strings.Join([]string{
		"the DET the dog runs",
		"",
		"pattern dog NOUN the dog runs",
		"analyze the cat.",
		"dog NOUN the dog",
		"quit",
		"the DET never reached",
	}, "\n")

	stdout, stderr, code := c.RunWithInput(input, "repl")
	if code != 0 {
		t.Fatalf("exitCode=%d\nstderr: %s", code, stderr)
	}

	want := "DT\nDET NOUN VERB\nDET NOUN PUNCT\nNOUN\n"
	if got := stdout; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}

func Test_Repl_Prints_Usage_When_Line_Too_Short(t *testing.T) {
	t.Parallel()

	c := newLexiconCLI(t)

	stdout, _, code := c.RunWithInput("the DET\n", "repl")
	if code != 0 {
		t.Fatalf("exitCode=%d", code)
	}

	cli.AssertContains(t, stdout, "usage: <word> <tag> <phrase...>")
}

func Test_Fmt_Warns_And_Drops_Line_When_File_Has_Stray_Text(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteCache(messyTable + "remember to check casa\n")

	stdout, stderr, code := c.Run("fmt")
	if got, want := code, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "formatted")
	cli.AssertContains(t, stderr, "warning: not a table line: line 9")

	table := c.ReadCache()
	cli.AssertNotContains(t, table, "remember")
	cli.AssertContains(t, table, "| runs ")
}
