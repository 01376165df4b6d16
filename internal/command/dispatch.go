package command

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smileynet/addrbook/internal/book"
)

// Reply is the outcome of one input line.
type Reply struct {
	Text   string
	Failed bool // Text was derived from an error or the input was not understood.
	Exit   bool // The session should end after printing Text.
}

// exitCommands end the session.
var exitCommands = []string{"close", "exit"}

// Dispatcher routes input lines to handlers against a single address book.
type Dispatcher struct {
	book     *book.AddressBook
	registry *Registry
	logger   *zap.Logger
	now      func() time.Time
	window   int
	help     string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// New creates a Dispatcher over b with the builtin commands registered.
func New(b *book.AddressBook, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:   b,
		logger: zap.NewNop(),
		now:    time.Now,
		window: book.DefaultWindow,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registry = d.builtins()
	return d
}

// WithLogger sets the logger used for command tracing.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithClock overrides the clock used for the birthday window.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithWindow sets the birthday window in days.
func WithWindow(days int) Option {
	return func(d *Dispatcher) { d.window = days }
}

// WithHelp sets the text printed by the help command.
func WithHelp(text string) Option {
	return func(d *Dispatcher) { d.help = text }
}

// builtins registers every command handler.
func (d *Dispatcher) builtins() *Registry {
	r := NewRegistry()
	r.Register("hello", Hello)
	r.Register("add", AddContact)
	r.Register("change", ChangeContact)
	r.Register("remove-phone", RemovePhone)
	r.Register("phone", ShowPhones)
	r.Register("all", ShowAll)
	r.Register("delete", DeleteContact)
	r.Register("add-birthday", AddBirthday)
	r.Register("show-birthday", ShowBirthday)
	r.Register("birthdays", Birthdays(d.now, d.window))
	if d.help != "" {
		r.Register("help", Text(strings.TrimRight(d.help, "\n")))
	}
	return r
}

// Commands returns every command name the dispatcher understands, including
// the exit commands.
func (d *Dispatcher) Commands() []string {
	return append(d.registry.Names(), exitCommands...)
}

// Execute runs one input line and returns the reply to print.
// It never panics on user input and never returns an error.
func (d *Dispatcher) Execute(line string) Reply {
	cmd, args := ParseInput(line)
	if cmd == "" {
		return Reply{Text: Invalid, Failed: true}
	}
	for _, exit := range exitCommands {
		if cmd == exit {
			d.logger.Debug("session closed", zap.String("command", cmd))
			return Reply{Text: Farewell, Exit: true}
		}
	}

	h, err := d.registry.Lookup(cmd)
	if err != nil {
		var unknown *UnknownCommandError
		if errors.As(err, &unknown) {
			d.logger.Debug("unknown command", zap.String("command", unknown.Name))
		}
		return Reply{Text: Invalid, Failed: true}
	}

	text, err := h(args, d.book)
	if err != nil {
		d.logger.Debug("command failed",
			zap.String("command", cmd),
			zap.Int("args", len(args)),
			zap.Error(err))
		return Reply{Text: message(err), Failed: true}
	}
	d.logger.Debug("command executed",
		zap.String("command", cmd),
		zap.Int("args", len(args)),
		zap.Int("contacts", d.book.Len()))
	return Reply{Text: text}
}

// ParseInput splits line on whitespace. The command token is lower-cased;
// arguments are returned as typed.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
