// Package cli wires the tada command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/script"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes: 0 ok, 1 runtime failure, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

type options struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
	noColor    bool
	verbose    bool
}

type app struct {
	opts   options
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	theme  ui.Theme
	errOut ui.Theme
	log    *logrus.Entry
	closer io.Closer
}

// Execute runs tada with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run dispatches args and returns an exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, errOut: ui.NewTheme("classic", ui.NewRenderer(stderr, false))}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	if err == nil {
		return exitOK
	}
	a.fail(err.Error())
	if isUsage(err) {
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, a.errOut.Muted.Render("Run `tada --help` for usage."))
		return exitUsage
	}
	return exitError
}

func isUsage(err error) bool {
	var ue usageError
	var pe *script.ParseError
	return errors.As(err, &ue) || errors.As(err, &pe)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tada",
		Short: "An in-memory todo list for the terminal",
		Long: `tada - an in-memory todo list

Without a subcommand tada opens the interactive list:
  a add    e edit    space toggle    d delete    C clear all    / filter    q quit

Nothing is saved; the list lives as long as the session.`,
		Example: `  tada
  tada replay groceries.todo
  printf 'add Buy milk\ndone 1\n' | tada replay --json`,
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", "", "path to config.yml (default: user config dir)")
	pf.StringVar(&a.opts.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable colors")
	pf.StringVar(&a.opts.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&a.opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.replayCommand())
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown subcommand: %s", args[0])
	}
	return nil
}

// setup resolves config (defaults, file, env, flags) and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return usageError{err: err}
	}
	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.opts.theme
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.opts.noColor
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = a.opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.opts.logLevel
	}
	if a.opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err: fmt.Errorf("config: %w", err)}
	}

	// The interactive list owns the terminal, so only a log file is kept there.
	var fallback io.Writer
	if cmd != cmd.Root() {
		fallback = a.stderr
	}
	closer, err := logging.Configure(cfg.Logging, fallback)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.closer = closer
	a.theme = ui.NewTheme(cfg.Theme, ui.NewRenderer(a.stdout, cfg.NoColor))
	a.errOut = ui.NewTheme(cfg.Theme, ui.NewRenderer(a.stderr, cfg.NoColor))
	a.log = logging.NewLogger("cli")
	a.log.WithFields(logrus.Fields{"cmd": cmd.Name(), "theme": cfg.Theme}).Debug("config resolved")
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *app) runInteractive(*cobra.Command, []string) error {
	if !ui.IsTTY(a.stdout) {
		return errors.New("the interactive list needs a terminal; use `tada replay` to run a script")
	}
	s := store.New()
	return tui.Run(s, a.theme, tea.WithInput(a.stdin), tea.WithOutput(a.stdout))
}

func (a *app) ok(msg string) {
	fmt.Fprintln(a.stdout, a.theme.Success.Render("✔ "+msg))
}

func (a *app) fail(msg string) {
	fmt.Fprintln(a.stderr, a.errOut.Error.Render("✖ "+msg))
}
