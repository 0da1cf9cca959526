package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/espacy/internal/config"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run is the main entry point. Returns exit code.
// sigCh can be nil if signal handling is not needed (e.g., in tests).
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	globalFlags := flag.NewFlagSet("espacy", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.SetOutput(&strings.Builder{})
	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagCwd := globalFlags.StringP("cwd", "C", "", "Run as if started in `dir`")
	flagConfig := globalFlags.StringP("config", "c", "", "Use specified config `file`")
	flagCache := globalFlags.String("cache", "", "Override cache table `path`")
	flagVerbose := globalFlags.BoolP("verbose", "v", false, "Log debug output to stderr")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globalFlags.Parse(args)
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printGlobalUsage(errOut, globalFlags, nil)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride:   *flagCwd,
		ConfigPath:        *flagConfig,
		CachePathOverride: *flagCache,
		HasCacheOverride:  globalFlags.Changed("cache"),
		Env:               env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printGlobalUsage(errOut, globalFlags, nil)

		return 1
	}

	log := newLogger(errOut, *flagVerbose)
	defer func() { _ = log.Sync() }()

	app := newApp(cfg, log, out)
	commands := allCommands(app)

	commandArgs := globalFlags.Args()
	if *flagHelp || len(commandArgs) == 0 {
		printGlobalUsage(out, globalFlags, commands)

		return 0
	}

	cmdName := commandArgs[0]

	cmd, ok := findCommand(commands, cmdName)
	if !ok {
		fprintln(errOut, "error: unknown command:", cmdName)
		fprintln(errOut)
		printGlobalUsage(errOut, globalFlags, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				log.Debug("signal received, shutting down")
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(in, out, errOut)

	return cmd.Run(ctx, o, commandArgs[1:])
}

func allCommands(app *App) []*Command {
	return []*Command{
		CorrectCmd(app),
		PatternCmd(app),
		AnalyzeCmd(app),
		SurroundingsCmd(app),
		AddCmd(app),
		RmCmd(app),
		ShowCmd(app),
		InitCmd(app),
		FmtCmd(app),
		ReplCmd(app),
		ServeCmd(app),
		PrintConfigCmd(app),
	}
}

func findCommand(commands []*Command, name string) (*Command, bool) {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd, true
		}
	}

	return nil, false
}

// newLogger writes human-readable log lines to w. Only warnings and errors
// are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core)
}

func printGlobalUsage(w io.Writer, globalFlags *flag.FlagSet, commands []*Command) {
	fprintln(w, "espacy - context-aware part-of-speech tag correction")
	fprintln(w)
	fprintln(w, "Usage: espacy [global flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Global flags:")
	fprint(w, globalFlags.FlagUsages())

	if len(commands) == 0 {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}

var errMissingArgs = errors.New("missing arguments")

// requireArgs returns an error naming what is missing when args has fewer
// than len(names) entries.
func requireArgs(args []string, names ...string) error {
	if len(args) >= len(names) {
		return nil
	}

	return fmt.Errorf("%w: %s", errMissingArgs, strings.Join(names[len(args):], ", "))
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprint(w io.Writer, a ...any) {
	_, _ = fmt.Fprint(w, a...)
}
