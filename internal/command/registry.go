// Package command parses input lines and routes them to address book handlers.
package command

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps command names to handlers.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a named handler. Overwrites if name already exists.
// Panics if name is empty or h is nil (programmer error).
func (r *Registry) Register(name string, h Handler) {
	if name == "" {
		panic("command: Register called with empty name")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	r.handlers[strings.ToLower(name)] = h
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, error) {
	h, ok := r.handlers[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return h, nil
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownCommandError indicates a command name is not registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}
