package cli

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/calvinalkan/espacy/internal/config"
	"github.com/calvinalkan/espacy/internal/correction"
	"github.com/calvinalkan/espacy/internal/fs"
	"github.com/calvinalkan/espacy/internal/store"
	"github.com/calvinalkan/espacy/internal/tagger"
)

var errNoTagger = errors.New("no tagger configured (set tagger.command or tagger.lexicon)")

// App carries the resolved configuration and builds the services commands
// need. Nothing is opened until a command asks for it.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	out io.Writer
}

func newApp(cfg config.Config, log *zap.Logger, out io.Writer) *App {
	return &App{Config: &cfg, Log: log, out: out}
}

// Delimiters returns the configured delimiter set, or the default one.
func (a *App) Delimiters() tagger.Delimiters {
	if len(a.Config.Delimiters) > 0 {
		return tagger.Delimiters(a.Config.Delimiters)
	}

	return tagger.DefaultDelimiters()
}

// Store opens the correction table store.
func (a *App) Store() (*store.Store, error) {
	return store.New(fs.NewReal(), a.Config.CachePathAbs,
		store.WithLogger(a.Log.Named("store")),
		store.WithEcho(a.out),
	)
}

// Tagger builds the configured tagger. A command takes precedence over a
// lexicon.
func (a *App) Tagger() (tagger.Tagger, error) {
	tc := a.Config.Tagger

	switch {
	case len(tc.Command) > 0:
		tg, err := tagger.NewCommand(tc.Command)
		if err != nil {
			return nil, fmt.Errorf("tagger: %w", err)
		}

		return tg, nil
	case a.Config.LexiconAbs != "":
		tg, err := tagger.LoadLexicon(a.Config.LexiconAbs, tc.FallbackTag)
		if err != nil {
			return nil, fmt.Errorf("tagger: %w", err)
		}

		return tg, nil
	default:
		return nil, errNoTagger
	}
}

// Corrector builds a corrector over the configured tagger and store.
func (a *App) Corrector() (*correction.Corrector, error) {
	tg, err := a.Tagger()
	if err != nil {
		return nil, err
	}

	st, err := a.Store()
	if err != nil {
		return nil, err
	}

	return correction.New(tg, st,
		correction.WithDelimiters(a.Delimiters()),
		correction.WithLogger(a.Log.Named("correction")),
	), nil
}
