package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#7D56F4")
	muted  = lipgloss.Color("#6C6C6C")

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(muted)
	emptyStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Align(lipgloss.Center, lipgloss.Center)
	selectedCardStyle = cardStyle.BorderForeground(accent)

	bodyStyle = lipgloss.NewStyle().PaddingLeft(1)
)

func counter(i, n int) string {
	return fmt.Sprintf("%d/%d", i+1, n)
}
