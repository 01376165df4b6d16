// Package repl runs the plain line-oriented command loop.
package repl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smileynet/addrbook/internal/command"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "Enter a command: "

// MaxLineBytes is the longest input line that is dispatched. Longer lines
// are drained and answered with command.Invalid.
const MaxLineBytes = bufio.MaxScanTokenSize

// Executor runs one input line. Implemented by *command.Dispatcher.
type Executor interface {
	Execute(line string) command.Reply
}

// Loop reads commands from in and writes replies to out.
type Loop struct {
	in     io.Reader
	out    io.Writer
	exec   Executor
	prompt string
}

// Option configures a Loop.
type Option func(*Loop)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(p string) Option {
	return func(l *Loop) { l.prompt = p }
}

// New creates a Loop.
func New(in io.Reader, out io.Writer, exec Executor, opts ...Option) *Loop {
	l := &Loop{in: in, out: out, exec: exec, prompt: DefaultPrompt}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run prints the welcome banner and processes lines until an exit command,
// end of input, or ctx is done. ctx is only checked between lines.
// Malformed input never ends the loop; only a read failure is returned.
func (l *Loop) Run(ctx context.Context) error {
	_, _ = fmt.Fprintln(l.out, command.Welcome)

	r := bufio.NewReader(l.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		_, _ = fmt.Fprint(l.out, l.prompt)

		line, tooLong, err := readLine(r)
		if errors.Is(err, io.EOF) {
			// End of input behaves like exit.
			_, _ = fmt.Fprintln(l.out)
			_, _ = fmt.Fprintln(l.out, command.Farewell)
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: reading input: %w", err)
		}
		if tooLong {
			_, _ = fmt.Fprintln(l.out, command.Invalid)
			continue
		}

		reply := l.exec.Execute(line)
		_, _ = fmt.Fprintln(l.out, reply.Text)
		if reply.Exit {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineBytes is consumed in full and reported as too long. io.EOF is only
// returned once no input is left.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(bytes.TrimRight(buf, "\r\n")) > MaxLineBytes {
				tooLong, buf = true, nil
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
		case err != nil:
			return "", false, err
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}
