package command

import (
	"errors"
	"fmt"

	"github.com/smileynet/addrbook/internal/contact"
)

// Sentinel errors for the handler error taxonomy.
var (
	ErrMissingKey      = errors.New("command: contact not found")
	ErrMissingArgument = errors.New("command: missing argument")
)

// UsageError is returned when a command receives too few arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Invalid command format. Usage: " + e.Usage
}

// Is makes errors.Is(err, ErrMissingArgument) true.
func (e *UsageError) Is(target error) bool {
	return target == ErrMissingArgument
}

// KeyError is returned when a command names a contact that does not exist.
type KeyError struct {
	Name string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("Contact '%s' not found.", e.Name)
}

// Is makes errors.Is(err, ErrMissingKey) true.
func (e *KeyError) Is(target error) bool {
	return target == ErrMissingKey
}

func usage(u string) error {
	return &UsageError{Usage: u}
}

// message flattens a handler error into the text shown to the user.
func message(err error) string {
	var (
		ue *UsageError
		ke *KeyError
		ve *contact.ValidationError
	)
	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.As(err, &ke):
		return ke.Error()
	case errors.As(err, &ve):
		return ve.Msg
	default:
		return "Error: " + err.Error()
	}
}
