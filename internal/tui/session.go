package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/addrbook/internal/command"
	"github.com/smileynet/addrbook/internal/repl"
)

// Dispatcher executes input lines and lists the commands it understands.
// Implemented by *command.Dispatcher.
type Dispatcher interface {
	Execute(line string) command.Reply
	Commands() []string
}

// Session runs one interactive address book session.
type Session interface {
	Run(ctx context.Context) error
}

// Verify at compile time that both front ends implement Session.
var (
	_ Session = (*repl.Loop)(nil)
	_ Session = (*TUISession)(nil)
)

// Options configures session creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the line prompt even if attached to a TTY.
	Prompt     string    // Prompt text (default: repl.DefaultPrompt).
}

// NewSession returns a terminal UI session when both input and output are
// TTYs, or a plain line loop otherwise. ForcePlain overrides TTY detection.
func NewSession(d Dispatcher, opts Options) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = repl.DefaultPrompt
	}

	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return repl.New(opts.In, opts.Out, d, repl.WithPrompt(opts.Prompt))
	}

	return &TUISession{dispatcher: d, in: opts.In, out: opts.Out, prompt: opts.Prompt}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TUISession runs the session as a Bubble Tea program.
type TUISession struct {
	dispatcher Dispatcher
	in         io.Reader
	out        io.Writer
	prompt     string
}

// Run starts the Bubble Tea program and blocks until the user exits.
// Cancelling ctx ends the session without error; any other program failure
// is returned.
func (s *TUISession) Run(ctx context.Context) error {
	model := NewModel(s.dispatcher, s.prompt)
	p := tea.NewProgram(model,
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
