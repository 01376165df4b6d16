package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileynet/addrbook/internal/book"
)

func TestRegistry(t *testing.T) {
	t.Run("register and look up handler", func(t *testing.T) {
		r := NewRegistry()
		r.Register("ping", Text("pong"))

		h, err := r.Lookup("ping")
		require.NoError(t, err)
		got, _ := h(nil, book.New())
		assert.Equal(t, "pong", got)
	})

	t.Run("lookup ignores case", func(t *testing.T) {
		r := NewRegistry()
		r.Register("Ping", Text("pong"))

		_, err := r.Lookup("PING")
		assert.NoError(t, err)
	})

	t.Run("unknown command returns UnknownCommandError", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Lookup("nonexistent")

		var uce *UnknownCommandError
		require.ErrorAs(t, err, &uce)
		assert.Equal(t, "nonexistent", uce.Name)
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := NewRegistry()
		r.Register("zebra", Text("z"))
		r.Register("alpha", Text("a"))

		assert.Equal(t, []string{"alpha", "zebra"}, r.Names())
	})

	t.Run("duplicate registration overwrites", func(t *testing.T) {
		r := NewRegistry()
		r.Register("echo", Text("first"))
		r.Register("echo", Text("second"))

		h, err := r.Lookup("echo")
		require.NoError(t, err)
		got, _ := h(nil, book.New())
		assert.Equal(t, "second", got)
	})

	t.Run("empty name panics", func(t *testing.T) {
		assert.Panics(t, func() { NewRegistry().Register("", Text("x")) })
	})

	t.Run("nil handler panics", func(t *testing.T) {
		assert.Panics(t, func() { NewRegistry().Register("x", nil) })
	})
}
