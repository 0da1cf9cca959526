package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/espacy/pkg/postable"
)

// ShowCmd returns the show command.
func ShowCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show [word]",
		Short: "Print the correction table",
		Long:  "Print the correction table as it would be written, or only the rows of [word].",
		Exec: func(_ context.Context, io *IO, args []string) error {
			st, err := app.Store()
			if err != nil {
				return err
			}

			cache, err := st.Load()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				word := args[0]
				if !cache.Has(word) {
					return fmt.Errorf("%w: %s", errNoSuchEntry, word)
				}

				sub := postable.NewCache()
				for _, e := range cache.WordEntries(word) {
					sub.Add(e.Word, e.Pattern, e.Tag, e.Example)
				}

				cache = sub
			}

			io.Printf("%s", postable.Marshal(cache))

			return nil
		},
	}
}

// InitCmd returns the init command.
func InitCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("init", flag.ContinueOnError),
		Usage: "init",
		Short: "Create an empty correction table",
		Long:  "Create the correction table file with only its header. An existing table is left alone.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			st, err := app.Store()
			if err != nil {
				return err
			}

			exists, err := st.Exists()
			if err != nil {
				return err
			}

			if exists {
				io.Warn("table already exists", st.Path())

				return nil
			}

			err = st.Init()
			if err != nil {
				return err
			}

			io.Println("created", st.Path())

			return nil
		},
	}
}

// FmtCmd returns the fmt command.
func FmtCmd(app *App) *Command {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.BoolP("print", "p", false, "Print the rewritten table")

	return &Command{
		Flags: fs,
		Usage: "fmt [flags]",
		Short: "Normalize the correction table",
		Long: `Read the correction table and write it back in canonical form: duplicate
rows dropped, repeated leading cells blanked, columns aligned.`,
		Exec: func(_ context.Context, io *IO, _ []string) error {
			st, err := app.Store()
			if err != nil {
				return err
			}

			err = st.Check()
			if errors.Is(err, postable.ErrNotTable) {
				io.Warn(err.Error(), "the line was dropped from the rewritten table")
			} else if err != nil {
				return err
			}

			cache, err := st.Load()
			if err != nil {
				return err
			}

			verbose, _ := fs.GetBool("print")

			err = st.Save(cache, verbose)
			if err != nil {
				return err
			}

			if !verbose {
				io.Printf("formatted %s (%d words)\n", st.Path(), len(cache.Words()))
			}

			return nil
		},
	}
}
