package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/addrbook"
	"github.com/smileynet/addrbook/internal/book"
	"github.com/smileynet/addrbook/internal/command"
	"github.com/smileynet/addrbook/internal/config"
	"github.com/smileynet/addrbook/internal/logging"
	"github.com/smileynet/addrbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for addrbook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"withargs" help:"Start an address book session."`
}

// RunCmd starts an interactive session over an empty address book.
type RunCmd struct {
	Config  string `help:"Extra config file layered over the user and project files."`
	NoTUI   bool   `help:"Force the plain line prompt even if attached to a TTY." default:"false"`
	Window  int    `help:"Days ahead to search for birthdays (negative keeps the configured value)." default:"-1"`
	LogFile string `help:"Write a JSON command log to this file."`
	Debug   bool   `help:"Log at debug level."`
}

// userConfigDir is where user-level config and the help override live.
func userConfigDir() string {
	return os.ExpandEnv("$HOME/.config/addrbook")
}

// loadConfig loads layered config from user, project, and explicit paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		userConfigDir()+"/config.yaml",
		".addrbook.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply copies CLI flag overrides onto cfg.
func (r *RunCmd) apply(cfg *config.Config) {
	if r.NoTUI {
		cfg.Session.Plain = true
	}
	if r.Window >= 0 {
		cfg.Birthdays.WindowDays = r.Window
	}
	if r.LogFile != "" {
		cfg.Log.File = r.LogFile
	}
	if r.Debug {
		cfg.Log.Level = "debug"
	}
}

// Run executes the run command.
func (r *RunCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	r.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := newSession(cfg, logger, nil, nil)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	// No signal context: in the line loop ctrl+c should end the process
	// rather than wait for the next line.
	return runSession(context.Background(), s, logger)
}

// newSession wires the address book, dispatcher, and front end for cfg.
// Nil in and out default to the process's standard streams.
func newSession(cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (tui.Session, error) {
	helpText, err := addrbook.HelpText(addrbook.OverlayFS(userConfigDir(), addrbook.Help))
	if err != nil {
		return nil, err
	}

	d := command.New(book.New(),
		command.WithWindow(cfg.Birthdays.WindowDays),
		command.WithLogger(logger),
		command.WithHelp(helpText),
	)

	return tui.NewSession(d, tui.Options{
		In:         in,
		Out:        out,
		ForcePlain: cfg.Session.Plain,
		Prompt:     cfg.Session.Prompt,
	}), nil
}

// runSession runs s and tags failures as session errors.
func runSession(ctx context.Context, s tui.Session, logger *zap.Logger) error {
	logger.Debug("session started", zap.String("front_end", fmt.Sprintf("%T", s)))
	if err := s.Run(ctx); err != nil {
		logger.Error("session failed", zap.Error(err))
		return &SessionError{Err: err}
	}
	logger.Debug("session ended")
	return nil
}

// SessionError reports a failure after the session started, such as a
// broken input stream.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string { return "session: " + e.Err.Error() }
func (e *SessionError) Unwrap() error { return e.Err }

const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *SessionError
	if errors.As(err, &se) {
		return exitSession
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("addrbook"),
		kong.Description("An interactive assistant for contacts and birthdays."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
