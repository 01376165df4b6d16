package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	replyStyle  = lipgloss.NewStyle()
)

// styleFor returns the transcript style for an entry kind.
func styleFor(kind entryKind) lipgloss.Style {
	switch kind {
	case entryEcho:
		return echoStyle
	case entryFailed:
		return failedStyle
	default:
		return replyStyle
	}
}
