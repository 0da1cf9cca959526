package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

// CorrectCmd returns the correct command.
func CorrectCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("correct", flag.ContinueOnError),
		Usage: "correct <word> <tag> <phrase>",
		Short: "Print the corrected tag of a word",
		Long: `Print the corrected tag of <word> inside <phrase>.

<tag> is the tag the word was originally given. It is printed unchanged
when the cache has no correction for the word in this context. Remaining
arguments are joined with spaces to form the phrase.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execCorrect(ctx, io, app, args)
		},
	}
}

func execCorrect(ctx context.Context, io *IO, app *App, args []string) error {
	err := requireArgs(args, "word", "tag", "phrase")
	if err != nil {
		return err
	}

	corrector, err := app.Corrector()
	if err != nil {
		return err
	}

	tag, err := corrector.CorrectTag(ctx, args[0], args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}

	io.Println(tag)

	return nil
}

// PatternCmd returns the pattern command.
func PatternCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("pattern", flag.ContinueOnError),
		Usage: "pattern <word> <tag> <phrase>",
		Short: "Print the context pattern of a word",
		Long: `Print the context pattern of <word> inside <phrase>: the tag of the
previous token, <tag>, and the tag of the next token. Missing neighbors
are left out.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			err := requireArgs(args, "word", "tag", "phrase")
			if err != nil {
				return err
			}

			corrector, err := app.Corrector()
			if err != nil {
				return err
			}

			pattern, err := corrector.Pattern(ctx, args[0], args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}

			io.Println(pattern)

			return nil
		},
	}
}

// AnalyzeCmd returns the analyze command.
func AnalyzeCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("analyze", flag.ContinueOnError),
		Usage: "analyze <text>",
		Short: "Print the tag sequence of a text",
		Long: `Print the tags of every token in <text>, separated by spaces. Only the
period is split off as its own token.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			err := requireArgs(args, "text")
			if err != nil {
				return err
			}

			corrector, err := app.Corrector()
			if err != nil {
				return err
			}

			pattern, err := corrector.AnalyzePattern(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			io.Println(pattern)

			return nil
		},
	}
}

// SurroundingsCmd returns the surroundings command.
func SurroundingsCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("surroundings", flag.ContinueOnError),
		Usage: "surroundings <word> <text>",
		Short: "Print a word and its neighbors with their tags",
		Long: `Print the previous token, the first occurrence of <word>, and the next
token of <text>, each as text/tag. The text is lower-cased and stripped of
punctuation and digits before tagging. A missing neighbor prints empty.`,
		Exec: func(ctx context.Context, io *IO, args []string) error {
			err := requireArgs(args, "word", "text")
			if err != nil {
				return err
			}

			corrector, err := app.Corrector()
			if err != nil {
				return err
			}

			found, err := corrector.Surroundings(ctx, strings.Join(args[1:], " "), args[0])
			if err != nil {
				return err
			}

			for i, label := range []string{"previous", "word", "next"} {
				tok := found[i]
				if tok.Text == "" {
					io.Println(label + "=")
					continue
				}

				io.Println(label + "=" + tok.Text + "/" + tok.Tag)
			}

			if found[1].Text == "" {
				io.Warn("word not found in text", args[0])
			}

			return nil
		},
	}
}
