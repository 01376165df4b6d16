// Package tui provides the interactive terminal front end for an address book session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addrbook/internal/command"
)

// chromeHeight is the number of lines below the transcript: input and help bar.
const chromeHeight = 2

// entryKind selects how a transcript entry is styled.
type entryKind int

const (
	entryReply entryKind = iota
	entryEcho
	entryFailed
)

// entry is one block of transcript text; it may span several lines.
type entry struct {
	kind entryKind
	text string
}

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	dispatcher Dispatcher
	prompt     string
	input      textinput.Model
	help       help.Model
	keys       keyMap
	transcript []entry
	history    []string
	historyIdx int // len(history) when not browsing history.
	width      int
	height     int
	done       bool
}

// NewModel creates a Model that sends submitted lines to d.
func NewModel(d Dispatcher, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.ShowSuggestions = true
	ti.SetSuggestions(d.Commands())
	// Up/down belong to history recall.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.Focus()

	return Model{
		dispatcher: d,
		prompt:     prompt,
		input:      ti,
		help:       help.New(),
		keys:       defaultKeyMap(),
		transcript: []entry{{kind: entryReply, text: command.Welcome}},
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.prompt)-1, 0)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.transcript = append(m.transcript, entry{kind: entryReply, text: command.Farewell})
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and records the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	reply := m.dispatcher.Execute(line)

	kind := entryReply
	if reply.Failed {
		kind = entryFailed
	}
	m.transcript = append(m.transcript,
		entry{kind: entryEcho, text: m.prompt + line},
		entry{kind: kind, text: reply.Text},
	)

	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.historyIdx = len(m.history)
	m.input.Reset()

	if reply.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// recall moves through previously submitted lines. Moving past the newest
// entry clears the input.
func (m *Model) recall(delta int) {
	idx := m.historyIdx + delta
	if idx < 0 || len(m.history) == 0 {
		return
	}
	if idx >= len(m.history) {
		m.historyIdx = len(m.history)
		m.input.Reset()
		return
	}
	m.historyIdx = idx
	m.input.SetValue(m.history[idx])
	m.input.CursorEnd()
}

// View renders the transcript tail, the input line, and the help bar.
// Once done, only the transcript is rendered so it stays on screen.
func (m Model) View() string {
	var lines []string
	for _, e := range m.transcript {
		lines = append(lines, strings.Split(styleFor(e.kind).Render(e.text), "\n")...)
	}

	if m.done {
		return strings.Join(lines, "\n") + "\n"
	}

	if m.height > 0 {
		room := max(m.height-chromeHeight, 0)
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
	}
	lines = append(lines, m.input.View(), m.help.View(m.keys))
	return strings.Join(lines, "\n")
}
