package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/espacy/internal/server"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd returns the serve command.
func ServeCmd(app *App) *Command {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.StringP("listen", "l", "", "Listen `address` (default from config)")

	return &Command{
		Flags: fs,
		Usage: "serve [flags]",
		Short: "Serve corrections over HTTP",
		Long: `Serve the correction API:

  POST /api/correct   {"word","tag","phrase"} -> {"tag"}
  POST /api/pattern   {"word","tag","phrase"} -> {"pattern"}
  GET  /api/cache     [?word=w] -> [{"word","pattern","tag","example"}]

The cache is loaded once before the listener opens. Interrupt to stop.`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			addr, _ := fs.GetString("listen")
			if addr == "" {
				addr = app.Config.Listen
			}

			return execServe(ctx, io, app, addr)
		},
	}
}

func execServe(ctx context.Context, io *IO, app *App, addr string) error {
	corrector, err := app.Corrector()
	if err != nil {
		return err
	}

	cache, err := corrector.Cache()
	if err != nil {
		return err
	}

	log := app.Log.Named("server")

	handler := server.NewHandler(corrector, server.Options{
		CORSOrigins: app.Config.CORSOrigins,
		Log:         log,
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	io.Printf("listening on http://%s (%d words in cache)\n", ln.Addr(), len(cache.Words()))

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Debug("shutting down", zap.String("addr", ln.Addr().String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
