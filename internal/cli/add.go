package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/espacy/internal/correction"
	"github.com/calvinalkan/espacy/pkg/postable"
)

var (
	errPhraseAndText  = errors.New("--phrase and --text are mutually exclusive")
	errWordNotInText  = errors.New("word not found in text")
	errEmptyCorrected = errors.New("corrected tag cannot be empty")
)

// AddCmd returns the add command.
func AddCmd(app *App) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.String("phrase", "", "Example `phrase`; its tags give the context pattern")
	fs.String("text", "", "Longer `text`; the sentence containing the word becomes the example")
	fs.String("pattern", "", "Explicit context `pattern` (overrides the derived one)")
	fs.BoolP("print", "p", false, "Print the rewritten table")

	return &Command{
		Flags: fs,
		Usage: "add <word> <tag> <corrected> [flags]",
		Short: "Record a tag correction",
		Long: `Record that <word>, tagged <tag>, should be tagged <corrected>.

The context pattern is derived by tagging --phrase (or the sentence of
--text that contains the word). Without either, the pattern is the bare
<tag> unless --pattern is given. The whole table is rewritten.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execAdd(ctx, io, app, fs, args)
		},
	}
}

func execAdd(ctx context.Context, io *IO, app *App, fs *flag.FlagSet, args []string) error {
	err := requireArgs(args, "word", "tag", "corrected")
	if err != nil {
		return err
	}

	word, tag, corrected := args[0], args[1], args[2]
	if corrected == "" {
		return errEmptyCorrected
	}

	phrase, _ := fs.GetString("phrase")
	text, _ := fs.GetString("text")
	pattern, _ := fs.GetString("pattern")
	verbose, _ := fs.GetBool("print")

	if phrase != "" && text != "" {
		return errPhraseAndText
	}

	if text != "" {
		sentence, ok := correction.SentenceOf(text, word)
		if !ok {
			return fmt.Errorf("%w: %q", errWordNotInText, word)
		}

		phrase = strings.TrimSpace(sentence)
	}

	if pattern == "" {
		pattern, err = derivePattern(ctx, app, word, tag, phrase)
		if err != nil {
			return err
		}
	}

	st, err := app.Store()
	if err != nil {
		return err
	}

	cache, err := st.Load()
	if err != nil {
		return err
	}

	cache.Add(word, pattern, corrected, phrase)

	err = st.Save(cache, verbose)
	if err != nil {
		return err
	}

	if !verbose {
		io.Printf("added %s [%s] -> %s\n", word, postable.CanonicalPattern(pattern), corrected)
	}

	return nil
}

func derivePattern(ctx context.Context, app *App, word, tag, phrase string) (string, error) {
	if phrase == "" {
		return tag, nil
	}

	corrector, err := app.Corrector()
	if err != nil {
		return "", err
	}

	return corrector.Pattern(ctx, word, tag, phrase)
}
