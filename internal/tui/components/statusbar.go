package components

import (
	"strings"

	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Flash is a transient status message shown on the right of the status bar.
type Flash struct {
	Text  string
	Error bool
}

// RenderStatusBar renders the bottom status bar with key hints and an optional flash.
func RenderStatusBar(width int, hints string, flash Flash) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface).Bold(true)
	if flash.Error {
		flashStyle = flashStyle.Foreground(t.Red)
	}

	left := hintStyle.Render(" " + hints)
	right := ""
	if flash.Text != "" {
		right = flashStyle.Render(flash.Text + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		// Flash wins over hints on narrow terminals.
		left = ""
		padding = max(width-lipgloss.Width(right), 0)
	}

	return left + barStyle.Render(strings.Repeat(" ", padding)) + right
}
