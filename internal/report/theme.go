package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	success = lipgloss.Color("#22C55E") // Green
	warning = lipgloss.Color("#F97316") // Orange
	danger  = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)

	strongStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	weakStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)
)

// levelStyle colors a mastery label by tier.
func levelStyle(label string) lipgloss.Style {
	switch label {
	case "Mastered":
		return strongStyle
	case "Proficient":
		return lipgloss.NewStyle().Foreground(success)
	case "Developing":
		return lipgloss.NewStyle().Foreground(warning)
	default:
		return lipgloss.NewStyle().Foreground(danger)
	}
}
