package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, app)
		},
	}
}

func execPrintConfig(io *IO, app *App) error {
	cfg := app.Config

	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("cache_path=" + cfg.CachePathAbs)

	if len(cfg.Tagger.Command) > 0 {
		io.Println("tagger.command=" + strings.Join(cfg.Tagger.Command, " "))
	}

	if cfg.LexiconAbs != "" {
		io.Println("tagger.lexicon=" + cfg.LexiconAbs)
	}

	io.Println("tagger.fallback_tag=" + cfg.Tagger.FallbackTag)
	io.Println("delimiters=" + strings.Join(app.Delimiters(), " "))
	io.Println("listen=" + cfg.Listen)
	io.Println("cors_origins=" + strings.Join(cfg.CORSOrigins, ","))

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
