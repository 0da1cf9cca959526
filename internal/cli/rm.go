package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

var errNoSuchEntry = errors.New("no such entry")

// RmCmd returns the rm command.
func RmCmd(app *App) *Command {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.BoolP("print", "p", false, "Print the rewritten table")

	return &Command{
		Flags: fs,
		Usage: "rm <word> [pattern [tag]]",
		Short: "Remove corrections",
		Long: `Remove every correction of <word>, or only those under [pattern], or
only the single [tag] under [pattern]. The whole table is rewritten.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			err := requireArgs(args, "word")
			if err != nil {
				return err
			}

			var pattern, tag string
			if len(args) > 1 {
				pattern = args[1]
			}

			if len(args) > 2 {
				tag = args[2]
			}

			st, err := app.Store()
			if err != nil {
				return err
			}

			cache, err := st.Load()
			if err != nil {
				return err
			}

			if !cache.Remove(args[0], pattern, tag) {
				return fmt.Errorf("%w: %s", errNoSuchEntry, strings.Join(args, " "))
			}

			verbose, _ := fs.GetBool("print")

			err = st.Save(cache, verbose)
			if err != nil {
				return err
			}

			if !verbose {
				io.Println("removed", strings.Join(args, " "))
			}

			return nil
		},
	}
}
