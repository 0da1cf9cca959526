package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/espacy/internal/correction"
)

const replPrompt = "espacy> "

// ReplCmd returns the repl command.
func ReplCmd(app *App) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.Bool("no-history", false, "Do not read or write ~/.espacy_history")

	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "Correct tags interactively",
		Long: `Read lines of the form "<word> <tag> <phrase...>" and print the corrected
tag of each. The cache is loaded once at start.

Other input:
  pattern <word> <tag> <phrase...>   print the context pattern
  analyze <text...>                  print the tag sequence
  help                               show this help
  exit, quit, q                      leave`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			noHistory, _ := fs.GetBool("no-history")

			return execRepl(ctx, o, app, !noHistory)
		},
	}
}

// lineReader is the part of liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// scanReader reads lines from a non-terminal input without echoing a prompt.
type scanReader struct {
	sc *bufio.Scanner
}

func (s *scanReader) Prompt(string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.sc.Text(), nil
}

type repl struct {
	io        *IO
	corrector *correction.Corrector
	words     []string
	history   func(string)
}

func execRepl(ctx context.Context, o *IO, app *App, useHistory bool) error {
	corrector, err := app.Corrector()
	if err != nil {
		return err
	}

	cache, err := corrector.Cache()
	if err != nil {
		return err
	}

	r := &repl{io: o, corrector: corrector, words: cache.Words(), history: func(string) {}}

	in := o.In()
	if in == nil {
		in = strings.NewReader("")
	}

	if in != os.Stdin {
		return r.loop(ctx, &scanReader{sc: bufio.NewScanner(in)})
	}

	state := liner.NewLiner()
	defer func() { _ = state.Close() }()

	state.SetCtrlCAborts(true)
	state.SetCompleter(r.complete)
	r.history = state.AppendHistory

	path := historyFile()
	if useHistory && path != "" {
		if f, openErr := os.Open(path); openErr == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, createErr := os.Create(path); createErr == nil {
				_, _ = state.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	o.Printf("espacy repl (%d words in cache). Type 'help' for input forms.\n", len(r.words))

	return r.loop(ctx, state)
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".espacy_history")
}

func (r *repl) loop(ctx context.Context, in lineReader) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := in.Prompt(replPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history(line)

		if !r.eval(ctx, line) {
			return nil
		}
	}
}

// eval handles one input line and reports whether the loop should go on.
func (r *repl) eval(ctx context.Context, line string) bool {
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case "exit", "quit", "q":
		return false
	case "help", "?":
		r.io.Println(`<word> <tag> <phrase...>           print the corrected tag
pattern <word> <tag> <phrase...>   print the context pattern
analyze <text...>                  print the tag sequence
exit, quit, q                      leave`)
	case "pattern":
		if len(parts) < 4 {
			r.io.Println("usage: pattern <word> <tag> <phrase...>")
			return true
		}

		pattern, err := r.corrector.Pattern(ctx, parts[1], parts[2], strings.Join(parts[3:], " "))
		r.print(pattern, err)
	case "analyze":
		if len(parts) < 2 {
			r.io.Println("usage: analyze <text...>")
			return true
		}

		pattern, err := r.corrector.AnalyzePattern(ctx, strings.Join(parts[1:], " "))
		r.print(pattern, err)
	default:
		if len(parts) < 3 {
			r.io.Println("usage: <word> <tag> <phrase...>")
			return true
		}

		tag, err := r.corrector.CorrectTag(ctx, parts[0], parts[1], strings.Join(parts[2:], " "))
		r.print(tag, err)
	}

	return true
}

func (r *repl) print(result string, err error) {
	if err != nil {
		r.io.ErrPrintln("error:", err)
		return
	}

	r.io.Println(result)
}

// complete offers cache words for the first field of the line.
func (r *repl) complete(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}

	var out []string

	for _, w := range r.words {
		if strings.HasPrefix(w, line) {
			out = append(out, w)
		}
	}

	return out
}
