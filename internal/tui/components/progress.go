package components

import (
	"fmt"

	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForShare returns red/orange/yellow/green as the billable share of the year grows.
func ColorForShare(share float64) string {
	t := theme.Active
	switch {
	case share >= 0.8:
		return string(t.Green)
	case share >= 0.6:
		return string(t.Yellow)
	case share >= 0.4:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ShareBar renders a labeled bar for a 0-1 share followed by its percentage.
func ShareBar(label string, share float64, labelW, barWidth int) string {
	t := theme.Active

	share = min(max(share, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(share)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForShare(share))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", share*100))
}
